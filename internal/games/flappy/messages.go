package flappy

import (
	"fmt"
	"math/rand"
)

// endOfLifeMessage picks the encouragement shown when a life ends.
func endOfLifeMessage(rng *rand.Rand, jumps, best int) string {
	messages := [...]string{
		fmt.Sprintf("Great effort! You made %d jumps!", jumps),
		"So close! Try tapping more consistently through the pipes.",
		fmt.Sprintf("You're getting better! Your best is %d points.", best),
		"Pro tip: Time your jumps to stay in the middle of the gaps!",
		"Don't give up! Even the best players crash sometimes.",
		"Nice rhythm! Keep practicing to improve your timing.",
	}
	return messages[rng.Intn(len(messages))]
}
