package assets

// Emoji constants used in messages and banners.
const (
	GlyphSnowman   = "⛄"
	GlyphSnowflake = "❄️"
	GlyphTarget    = "🎯"
	GlyphWord      = "📝"
	GlyphCorrect   = "✅"
	GlyphWrong     = "❌"
	GlyphSparkle   = "✨"
	GlyphParty     = "🎉"
	GlyphTrophy    = "🏆"
	GlyphBroken    = "💔"
	GlyphWarning   = "⚠️"
	GlyphHint      = "💡"
	GlyphReplay    = "🔄"
	GlyphStats     = "📊"
	GlyphWave      = "👋"
	GlyphGame      = "🎮"
)

// Stages is the melting snowman, one entry per mistake count.
// Index 0 is the untouched snowman; the last entry is the puddle.
var Stages = []string{
	// 0: perfect snowman
	`  ___
 /___\
 (o o)
 ( : )
 ( : )
[_____]`,
	// 1: base starts melting
	`  ___
 /___\
 (o o)
 ( : )
 ( : )
~~___~~`,
	// 2: bottom section gone
	`  ___
 /___\
 (o o)
 ( : )
 ~~:~~`,
	// 3: middle melting
	`  ___
 /___\
 (o o)
 ~~:~~`,
	// 4: only the head remains
	`  ___
 /___\
 (o o)`,
	// 5: head melting, hat slipping
	`  ___
~~___~~
 (. .)`,
	// 6: puddle
	`  ___
 /___\
~~~~~~~~~~~`,
}

// Words is the fixed pool of secret words.
var Words = []string{"python", "git", "github", "snowman", "meltdown"}
