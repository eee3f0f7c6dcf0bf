package pwgen

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// Source supplies uniformly distributed indexes in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

type cryptoSource struct{}

// CryptoSource returns a Source backed by crypto/rand.
func CryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Intn(n int) (int, error) {
	randIndex, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(randIndex.Int64()), nil
}

type seededSource struct {
	r *mrand.Rand
}

// SeededSource returns a deterministic Source. Two sources created with the
// same seed produce the same sequence of draws, which makes generation traces
// reproducible in tests. It must not be used for real passwords.
func SeededSource(seed uint64) Source {
	return &seededSource{r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Intn(n int) (int, error) {
	return s.r.IntN(n), nil
}
