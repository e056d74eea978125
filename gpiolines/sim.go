package gpiolines

import (
	ss "dscheirer.com/pithermo/sevenseg_shiftreg"
)

// Sim is an in-memory shift register chain. DATA is sampled on every rising
// STORE edge and the register is copied to the outputs on every rising
// REFRESH edge, the same as the real part.
type Sim struct {
	size    int // register length in bits
	levels  map[ss.Line]bool
	shifted []bool
	latched []byte
	latches int
	logger  ss.Logger
}

func NewSim(digits int, logger ss.Logger) *Sim {
	if digits < 1 {
		digits = 1
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Sim{
		size:    digits * 8,
		levels:  make(map[ss.Line]bool),
		latched: make([]byte, digits),
		logger:  logger,
	}
}

func (s *Sim) Set(line ss.Line, high bool) {
	prev := s.levels[line]
	s.levels[line] = high
	if !high || prev {
		return
	}

	switch line {
	case ss.LineStore:
		s.shifted = append(s.shifted, s.levels[ss.LineData])
		if len(s.shifted) > s.size {
			s.shifted = s.shifted[len(s.shifted)-s.size:]
		}
	case ss.LineRefresh:
		s.latched = s.pack()
		s.latches++
		s.logger.Printf("latch: % x", s.latched)
	}
}

// pack groups the register into bytes in the order they were shifted in.
// Bits never shifted read as zero.
func (s *Sim) pack() []byte {
	bits := make([]bool, s.size-len(s.shifted), s.size)
	bits = append(bits, s.shifted...)
	out := make([]byte, s.size/8)
	for i, bit := range bits {
		if bit {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

// Latched returns what the outputs currently show.
func (s *Sim) Latched() []byte {
	return append([]byte(nil), s.latched...)
}

// Latches counts rising REFRESH edges.
func (s *Sim) Latches() int {
	return s.latches
}

func (s *Sim) Level(line ss.Line) bool {
	return s.levels[line]
}

func (s *Sim) Close() error {
	return nil
}
