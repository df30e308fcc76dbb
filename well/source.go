package well

import (
	"errors"
	"math/rand/v2"

	"github.com/plus3/blockdrop/shape"
)

// ErrEmptyScript is returned by ParseSequence for an empty script.
var ErrEmptyScript = errors.New("well: empty kind script")

// KindSource supplies the kind of each spawned shape.
type KindSource interface {
	NextKind() shape.Kind
}

// Uniform picks each kind independently with equal probability.
type Uniform struct {
	rng *rand.Rand
}

func NewUniform(rng *rand.Rand) *Uniform {
	return &Uniform{rng: rng}
}

// NewUniformSeed returns a Uniform source over a PCG generator seeded with seed.
func NewUniformSeed(seed uint64) *Uniform {
	return NewUniform(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (u *Uniform) NextKind() shape.Kind {
	return shape.Kinds[u.rng.IntN(len(shape.Kinds))]
}

// Bag deals all seven kinds in shuffled order before reshuffling.
type Bag struct {
	rng  *rand.Rand
	next []shape.Kind
}

func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

func (b *Bag) NextKind() shape.Kind {
	if len(b.next) == 0 {
		bag := shape.Kinds
		b.rng.Shuffle(len(bag), func(i, j int) {
			bag[i], bag[j] = bag[j], bag[i]
		})
		b.next = bag[:]
	}
	k := b.next[0]
	b.next = b.next[1:]
	return k
}

// Sequence replays a fixed list of kinds, cycling when it runs out.
type Sequence struct {
	kinds []shape.Kind
	pos   int
}

// NewSequence panics if kinds is empty or holds an invalid kind.
func NewSequence(kinds ...shape.Kind) *Sequence {
	if len(kinds) == 0 {
		panic("well: empty kind sequence")
	}
	for _, k := range kinds {
		if !k.Valid() {
			panic("well: invalid kind in sequence: " + k.String())
		}
	}
	return &Sequence{kinds: append([]shape.Kind(nil), kinds...)}
}

// ParseSequence builds a Sequence from letters such as "IOTSZ".
func ParseSequence(script string) (*Sequence, error) {
	kinds := make([]shape.Kind, 0, len(script))
	for i := range len(script) {
		k, err := shape.ParseKind(script[i : i+1])
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		return nil, ErrEmptyScript
	}
	return NewSequence(kinds...), nil
}

func (s *Sequence) NextKind() shape.Kind {
	k := s.kinds[s.pos]
	s.pos = (s.pos + 1) % len(s.kinds)
	return k
}

// Preview holds the next kind one spawn ahead of time. Every NextKind call
// hands out the pre-rolled kind and rolls a fresh one from the wrapped source.
type Preview struct {
	src  KindSource
	next shape.Kind
}

func NewPreview(src KindSource) *Preview {
	return &Preview{src: src, next: src.NextKind()}
}

// Peek returns the kind the next spawn will use.
func (p *Preview) Peek() shape.Kind {
	return p.next
}

func (p *Preview) NextKind() shape.Kind {
	k := p.next
	p.next = p.src.NextKind()
	return k
}
