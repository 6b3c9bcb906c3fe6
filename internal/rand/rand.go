// Package rand implements the additive feedback generator behind glibc srand(3) and rand(3)
// (the TYPE_3 state of random_r with 31 words), so that a seed produces the very same sequence
// as a C program linked against glibc.
package rand

// Seed used by all workloads that need reproducible keys
const Seed uint32 = 12345

const (
	degree    = 31
	separator = 3
	discard   = 10 * degree
)

// Rand - Generator state. The zero value is not seeded, use New.
type Rand struct {
	state [degree]uint32
	front int
	rear  int
}

// New - Returns a new generator seeded as srand(seed) would
func New(seed uint32) *Rand {
	r := &Rand{}
	r.Seed(seed)
	return r
}

// Seed - Reinitializes the generator as srand(seed) would. A seed of 0 is treated as 1.
func (R *Rand) Seed(seed uint32) {
	if seed == 0 {
		seed = 1
	}

	// Park-Miller minimal standard generator fills the state, computed with Schrage's method on signed words
	word := int32(seed)
	R.state[0] = uint32(word)
	for i := 1; i < degree; i++ {
		hi := word / 127773
		lo := word % 127773
		word = 16807*lo - 2836*hi
		if word < 0 {
			word += 2147483647
		}
		R.state[i] = uint32(word)
	}

	R.front = separator
	R.rear = 0

	for i := 0; i < discard; i++ {
		R.next()
	}
}

// Int - Returns the next value in [0, 2^31), the equivalent of rand()
func (R *Rand) Int() int32 {
	return int32(R.next())
}

func (R *Rand) next() uint32 {
	R.state[R.front] += R.state[R.rear]
	result := R.state[R.front] >> 1

	R.front++
	if R.front >= degree {
		R.front = 0
		R.rear++
	} else {
		R.rear++
		if R.rear >= degree {
			R.rear = 0
		}
	}

	return result
}
