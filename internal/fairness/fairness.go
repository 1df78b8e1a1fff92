// Package fairness draws crash points with a commit-reveal scheme.
//
// The server seed is committed to (SHA-256) before the player picks a client seed and is
// revealed once the round ends; anyone can then recompute the crash point from the seed and
// the client seed. A commitment only binds the server if it was published before the client
// seed was chosen, so seeds are issued ahead of the round with NewSeed and consumed by Reveal.
package fairness

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/shopspring/decimal"
)

const (
	seedSize = 32
	drawBits = 52
)

var (
	DefaultHouseEdge = decimal.RequireFromString("0.03")
	DefaultMax       = decimal.NewFromInt(1000)

	minCrashPoint = decimal.NewFromInt(1)
)

var ErrCommitmentMismatch = errors.New("server seed does not match commitment")

// CrashPoint maps a uniform draw in (0,1] to a crash multiplier:
// floor((1-edge)/draw, 2 places), clamped to [1.00, maxPoint].
// Non-positive or NaN draws give 1.00.
func CrashPoint(draw float64, houseEdge, maxPoint decimal.Decimal) decimal.Decimal {
	if math.IsNaN(draw) || draw <= 0 {
		return minCrashPoint
	}
	if draw > 1 {
		draw = 1
	}
	point := decimal.NewFromInt(1).Sub(houseEdge).Div(decimal.NewFromFloat(draw))
	point = point.Shift(2).Floor().Shift(-2)
	if point.LessThan(minCrashPoint) {
		return minCrashPoint
	}
	if point.GreaterThan(maxPoint) {
		return maxPoint
	}
	return point
}

// Draw derives a uniform value in (0,1] from the first 52 bits of HMAC-SHA256(serverSeed, clientSeed).
func Draw(serverSeed []byte, clientSeed string) float64 {
	mac := hmac.New(sha256.New, serverSeed)
	mac.Write([]byte(clientSeed))
	sum := mac.Sum(nil)
	v := binary.BigEndian.Uint64(sum[:8]) >> (64 - drawBits)
	return float64(v+1) / float64(uint64(1)<<drawBits)
}

// Commit returns the hex SHA-256 of the seed.
func Commit(serverSeed []byte) string {
	sum := sha256.Sum256(serverSeed)
	return hex.EncodeToString(sum[:])
}

// Seed is a server seed together with its published commitment.
type Seed struct {
	ServerSeed string
	Commitment string
}

type Outcome struct {
	CrashPoint decimal.Decimal
	ServerSeed string
	Commitment string
	ClientSeed string
}

type Generator struct {
	houseEdge decimal.Decimal
	max       decimal.Decimal
	random    io.Reader
}

type Option func(*Generator)

// WithRandom replaces crypto/rand as the seed source.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) {
		g.random = r
	}
}

func NewGenerator(houseEdge, maxPoint decimal.Decimal, opts ...Option) *Generator {
	g := &Generator{
		houseEdge: houseEdge,
		max:       maxPoint,
		random:    rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewSeed draws a server seed to be committed to ahead of a round.
// It fails only when the random source does.
func (g *Generator) NewSeed() (*Seed, error) {
	seed := make([]byte, seedSize)
	if _, err := io.ReadFull(g.random, seed); err != nil {
		return nil, fmt.Errorf("read server seed: %w", err)
	}
	return &Seed{
		ServerSeed: hex.EncodeToString(seed),
		Commitment: Commit(seed),
	}, nil
}

// Reveal derives the round outcome of a previously issued seed for clientSeed.
func (g *Generator) Reveal(seed *Seed, clientSeed string) (*Outcome, error) {
	raw, err := hex.DecodeString(seed.ServerSeed)
	if err != nil {
		return nil, fmt.Errorf("decode server seed: %w", err)
	}
	if Commit(raw) != seed.Commitment {
		return nil, ErrCommitmentMismatch
	}
	return &Outcome{
		CrashPoint: CrashPoint(Draw(raw, clientSeed), g.houseEdge, g.max),
		ServerSeed: seed.ServerSeed,
		Commitment: seed.Commitment,
		ClientSeed: clientSeed,
	}, nil
}

// Next draws a fresh seed and reveals it at once. The result is only as fair as the caller's
// guarantee that clientSeed was fixed before the seed existed.
func (g *Generator) Next(clientSeed string) (*Outcome, error) {
	seed, err := g.NewSeed()
	if err != nil {
		return nil, err
	}
	return g.Reveal(seed, clientSeed)
}

// Verify recomputes the crash point from a revealed seed after checking it against the commitment.
func (g *Generator) Verify(serverSeed, commitment, clientSeed string) (decimal.Decimal, error) {
	seed, err := hex.DecodeString(serverSeed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("decode server seed: %w", err)
	}
	if !hmac.Equal([]byte(Commit(seed)), []byte(commitment)) {
		return decimal.Zero, ErrCommitmentMismatch
	}
	return CrashPoint(Draw(seed, clientSeed), g.houseEdge, g.max), nil
}
