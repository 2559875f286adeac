package render

import (
	"fmt"
	"strings"

	"snowman-meltdown/assets"
	"snowman-meltdown/internal/game"
)

// Message text shared by the console and screen renderers.

func welcomeLines() []string {
	return []string{
		fmt.Sprintf("%s WELCOME TO SNOWMAN MELTDOWN! %s", assets.GlyphGame, assets.GlyphGame),
	}
}

func roundStartLines(wordLength, maxMistakes int) []string {
	return []string{
		fmt.Sprintf("%s Save the snowman by guessing the secret word!", assets.GlyphTarget),
		fmt.Sprintf("%s  You have %d wrong guesses before the snowman melts!", assets.GlyphWarning, maxMistakes),
		fmt.Sprintf("%s The word has %d letters.", assets.GlyphHint, wordLength),
	}
}

func guessResultLines(f game.GuessFeedback) []string {
	up := strings.ToUpper(string(f.Letter))
	if !f.Hit() {
		lines := []string{fmt.Sprintf("%s Sorry, '%s' is not in the word.", assets.GlyphWrong, up)}
		if f.Remaining > 0 {
			lines = append(lines, fmt.Sprintf("%s  Careful! %d wrong guess(es) left before meltdown!", assets.GlyphWarning, f.Remaining))
		}
		return lines
	}
	lines := []string{fmt.Sprintf("%s Excellent! '%s' is in the word! %s", assets.GlyphSparkle, up, assets.GlyphSparkle)}
	if f.Occurrences > 1 {
		lines = append(lines, fmt.Sprintf("%s Bonus! '%s' appears %d times!", assets.GlyphParty, up, f.Occurrences))
	}
	return lines
}

func rejectionLine(r *game.Rejection) string {
	switch r.Reason {
	case game.RejectEmpty:
		return assets.GlyphWrong + " Please enter something! Don't leave it blank."
	case game.RejectTooLong:
		return assets.GlyphWrong + " Please enter only ONE letter at a time."
	case game.RejectNotAlphabetic:
		return assets.GlyphWrong + " Please enter a LETTER (a-z), not numbers or symbols."
	case game.RejectAlreadyGuessed:
		return fmt.Sprintf("%s You already guessed '%s'. Try a different letter!",
			assets.GlyphWrong, strings.ToUpper(string(r.Letter)))
	}
	return assets.GlyphWrong + " " + r.Error()
}

func roundResultLines(outcome game.RoundState, secret string, guessCount int) []string {
	word := strings.ToUpper(secret)
	if outcome == game.StateWon {
		return []string{
			fmt.Sprintf("%s VICTORY! You saved the snowman! %s", assets.GlyphTrophy, assets.GlyphTrophy),
			fmt.Sprintf("The word was '%s' - you got it in %d guesses!", word, guessCount),
		}
	}
	return []string{
		fmt.Sprintf("%s GAME OVER! The snowman melted completely! %s", assets.GlyphBroken, assets.GlyphBroken),
		fmt.Sprintf("The word was '%s'. Try again to save the next snowman!", word),
	}
}

func replayHintLine() string {
	return "Please enter 'y' for yes or 'n' for no."
}

func replayAcceptedLine() string {
	return assets.GlyphReplay + " Starting a new game..."
}

func summaryLines(s game.SessionStats) []string {
	lines := []string{
		fmt.Sprintf("%s Thanks for playing Snowman Meltdown!", assets.GlyphWave),
		fmt.Sprintf("%s You played %d game(s) today.", assets.GlyphStats, s.GamesPlayed),
	}
	if s.GamesPlayed > 0 {
		lines = append(lines, fmt.Sprintf("%s You saved %d snowman(s) (%.1f%% success rate)!",
			assets.GlyphTrophy, s.GamesWon, s.WinRate()))
	}
	return append(lines, fmt.Sprintf("%s Come back soon to save more snowmen!", assets.GlyphGame))
}

func wordLine(s game.Snapshot) string {
	return fmt.Sprintf("%s Word: %s", assets.GlyphWord, s.Masked)
}

func healthLine(s game.Snapshot) string {
	return fmt.Sprintf("%s  Snowman Health: %d/%d", assets.GlyphSnowflake, s.Health(), s.MaxMistakes)
}

// letterList formats letters as "A, C, T".
func letterList(letters []rune) string {
	parts := make([]string, len(letters))
	for i, l := range letters {
		parts[i] = strings.ToUpper(string(l))
	}
	return strings.Join(parts, ", ")
}

