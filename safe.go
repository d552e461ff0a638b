package apmath

import (
	"sync"
	"unsafe"
)

// Safe is a mutex-guarded slot holding a Complex[Dec]. The values themselves
// are immutable, so Safe exists for callers that share one evolving slot
// across goroutines (accumulators, caches). All operations read the current
// value and return a NEW Safe result; Store swaps the slot.
type Safe struct {
	mu sync.RWMutex
	z  Complex[Dec]
}

// NewSafe wraps z.
func NewSafe(z Complex[Dec]) *Safe { return &Safe{z: z} }

// ParseSafe parses a complex literal at the given precision into a new Safe.
func ParseSafe(s string, prec uint32) (*Safe, error) {
	z, err := ParseDecComplex(s, prec)
	if err != nil {
		return nil, err
	}
	return NewSafe(z), nil
}

// MustParseSafe panics on error.
func MustParseSafe(s string, prec uint32) *Safe {
	return NewSafe(MustParseDecComplex(s, prec))
}

// Load returns the current value.
func (s *Safe) Load() Complex[Dec] {
	s.mu.RLock()
	z := s.z
	s.mu.RUnlock()
	return z
}

// Store replaces the current value.
func (s *Safe) Store(z Complex[Dec]) {
	s.mu.Lock()
	s.z = z
	s.mu.Unlock()
}

// Prec reads the digit count of the current value.
func (s *Safe) Prec() uint32 {
	s.mu.RLock()
	p := s.z.prec()
	s.mu.RUnlock()
	return p
}

// SetPrec rounds the current value to the given digit count, in place.
func (s *Safe) SetPrec(prec uint32) {
	s.mu.Lock()
	s.z = s.z.WithPrec(prec)
	s.mu.Unlock()
}

// String formats the current value.
func (s *Safe) String() string {
	s.mu.RLock()
	out := s.z.String()
	s.mu.RUnlock()
	return out
}

// lockPairR acquires read locks on a and b in a stable address order to
// avoid deadlocks.
func lockPairR(a, b *Safe) (unlock func()) {
	if a == b {
		a.mu.RLock()
		return func() { a.mu.RUnlock() }
	}
	ap := uintptr(unsafe.Pointer(a))
	bp := uintptr(unsafe.Pointer(b))
	if ap < bp {
		a.mu.RLock()
		b.mu.RLock()
		return func() { b.mu.RUnlock(); a.mu.RUnlock() }
	}
	b.mu.RLock()
	a.mu.RLock()
	return func() { a.mu.RUnlock(); b.mu.RUnlock() }
}

func (s *Safe) unary(op func(Complex[Dec]) Complex[Dec]) *Safe {
	s.mu.RLock()
	res := &Safe{z: op(s.z)}
	s.mu.RUnlock()
	return res
}

func (a *Safe) binary(b *Safe, op func(x, y Complex[Dec]) Complex[Dec]) *Safe {
	unlock := lockPairR(a, b)
	defer unlock()
	return &Safe{z: op(a.z, b.z)}
}

// Arithmetic: each returns a NEW Safe result.

func (a *Safe) Add(b *Safe) *Safe { return a.binary(b, Complex[Dec].Add) }
func (a *Safe) Sub(b *Safe) *Safe { return a.binary(b, Complex[Dec].Sub) }
func (a *Safe) Mul(b *Safe) *Safe { return a.binary(b, Complex[Dec].Mul) }
func (a *Safe) Quo(b *Safe) *Safe { return a.binary(b, Complex[Dec].Quo) }
func (a *Safe) Pow(b *Safe) *Safe { return a.binary(b, Complex[Dec].Pow) }

func (s *Safe) Neg() *Safe  { return s.unary(Complex[Dec].Neg) }
func (s *Safe) Conj() *Safe { return s.unary(Complex[Dec].Conj) }
func (s *Safe) Inv() *Safe  { return s.unary(Complex[Dec].Inv) }

// Elementary / transcendental (read one, produce new).

func (s *Safe) Sqrt() *Safe  { return s.unary(Complex[Dec].Sqrt) }
func (s *Safe) Exp() *Safe   { return s.unary(Complex[Dec].Exp) }
func (s *Safe) Log() *Safe   { return s.unary(Complex[Dec].Log) }
func (s *Safe) Sin() *Safe   { return s.unary(Complex[Dec].Sin) }
func (s *Safe) Cos() *Safe   { return s.unary(Complex[Dec].Cos) }
func (s *Safe) Tan() *Safe   { return s.unary(Complex[Dec].Tan) }
func (s *Safe) Asin() *Safe  { return s.unary(Complex[Dec].Asin) }
func (s *Safe) Acos() *Safe  { return s.unary(Complex[Dec].Acos) }
func (s *Safe) Atan() *Safe  { return s.unary(Complex[Dec].Atan) }
func (s *Safe) Sinh() *Safe  { return s.unary(Complex[Dec].Sinh) }
func (s *Safe) Cosh() *Safe  { return s.unary(Complex[Dec].Cosh) }
func (s *Safe) Tanh() *Safe  { return s.unary(Complex[Dec].Tanh) }
func (s *Safe) Asinh() *Safe { return s.unary(Complex[Dec].Asinh) }
func (s *Safe) Acosh() *Safe { return s.unary(Complex[Dec].Acosh) }
func (s *Safe) Atanh() *Safe { return s.unary(Complex[Dec].Atanh) }
