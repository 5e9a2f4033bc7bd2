package crypto

// wordList is the fixed vocabulary for passphrase generation. Initialized
// once and never mutated; concurrent readers need no locking.
var wordList = []string{
	"apple", "banana", "cherry", "dragon", "eagle", "forest", "galaxy", "harbor",
	"island", "jungle", "kitten", "lemon", "mountain", "nebula", "ocean", "planet",
	"quantum", "river", "sunset", "thunder", "umbrella", "valley", "whisper", "xylophone",
	"yellow", "zebra", "anchor", "bridge", "castle", "diamond", "ember", "falcon",
	"glacier", "horizon", "ivory", "jasmine", "kingdom", "lantern", "meadow", "ninja",
	"orchid", "phoenix", "quartz", "rainbow", "silver", "tiger", "unity", "violet",
	"winter", "xenon", "yarn", "zephyr", "aurora", "breeze", "crystal", "dusk",
}

// WordListSize returns the number of words available to the passphrase
// generator.
func WordListSize() int {
	return len(wordList)
}
