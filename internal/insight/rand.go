package insight

import "math/rand"

// intn is the random source behind commentary selection. Selection is
// deliberately non-deterministic per call; tests pin this to a fixed
// function and assert pool membership instead of exact strings.
var intn = rand.Intn

func pick(pool []string) string {
	return pool[intn(len(pool))]
}
