package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrBadLog = errors.New("bad register log")

// Access is one line of a register log: a CPU write, or a read when Read is
// set, made at the given CPU cycle.
type Access struct {
	Cycle uint64
	Addr  uint16
	Data  uint8
	Read  bool
}

// ParseLog reads a register log. Each line is
//
//	cycle address value
//
// with the cycle in decimal and address and value in hex, optionally prefixed
// by $ or 0x. A value of "r" reads the address instead. Blank lines and
// lines starting with # are ignored. Cycles must not decrease.
func ParseLog(r io.Reader) ([]Access, error) {
	var log []Access
	var last uint64

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: expected 3 fields", ErrBadLog, line)
		}

		cycle, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: cycle: %v", ErrBadLog, line, err)
		}
		if cycle < last {
			return nil, fmt.Errorf("%w: line %d: cycle %d before %d", ErrBadLog, line, cycle, last)
		}
		last = cycle

		addr, err := parseHex(fields[1], 16)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: address: %v", ErrBadLog, line, err)
		}

		a := Access{Cycle: cycle, Addr: uint16(addr)}
		if strings.EqualFold(fields[2], "r") {
			a.Read = true
		} else {
			data, err := parseHex(fields[2], 8)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: value: %v", ErrBadLog, line, err)
			}
			a.Data = uint8(data)
		}
		log = append(log, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("register log: %w", err)
	}

	return log, nil
}

func parseHex(s string, bits int) (uint64, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	return strconv.ParseUint(s, 16, bits)
}

// LogPlayer stands in for the CPU, replaying a register log against the bus.
type LogPlayer struct {
	bus  *Bus
	log  []Access
	next int
}

func NewLogPlayer(bus *Bus, log []Access) *LogPlayer {
	return &LogPlayer{
		bus: bus,
		log: log,
	}
}

// Step performs any accesses due on the current cycle and then clocks the
// bus once.
func (p *LogPlayer) Step() {
	for p.next < len(p.log) && p.log[p.next].Cycle <= p.bus.systemClockCounter {
		a := p.log[p.next]
		if a.Read {
			p.bus.cpuRead(a.Addr)
		} else {
			p.bus.cpuWrite(a.Addr, a.Data)
		}
		p.next++
	}
	p.bus.clock()
}

func (p *LogPlayer) Run(cycles uint64) {
	for i := uint64(0); i < cycles; i++ {
		p.Step()
	}
}

// Done is true once every access in the log has been made.
func (p *LogPlayer) Done() bool {
	return p.next >= len(p.log)
}

// Length is the cycle of the last access in the log.
func (p *LogPlayer) Length() uint64 {
	if len(p.log) == 0 {
		return 0
	}
	return p.log[len(p.log)-1].Cycle
}

func (p *LogPlayer) Rewind() {
	p.next = 0
	p.bus.reset()
}
