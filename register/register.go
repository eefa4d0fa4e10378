// Package register splits register values into named bit fields.
package register

import (
	"fmt"
	"sort"
	"strings"
)

type Field struct {
	Index uint16
	Size  uint16
}

func (f Field) mask() uint16 {
	return ((^(0xFFFF << f.Size)) & 0xFFFF) << f.Index
}

type Register struct {
	Name   string
	fields map[string]Field
	values map[string]uint16
	Reg    uint16
}

func CreateRegister(name string, fields map[string]Field) Register {
	reg := Register{
		Name:   name,
		fields: fields,
		values: make(map[string]uint16),
	}
	for key := range reg.fields {
		reg.values[key] = 0
	}
	return reg
}

func (r *Register) SetField(key string, value uint16) {
	field, ok := r.fields[key]
	if !ok {
		return
	}

	mask := field.mask()
	r.SetReg((r.Reg & ^mask) | (mask & (value << field.Index)))
}

func (r *Register) SetReg(value uint16) {
	r.Reg = value
	if r.values == nil {
		r.values = make(map[string]uint16)
	}
	for key, field := range r.fields {
		r.values[key] = (r.Reg & field.mask()) >> field.Index
	}
}

func (r *Register) GetField(key string) uint16 {
	value, ok := r.values[key]
	if !ok {
		panic("Field " + key + " not found")
	}
	return value
}

// Names returns the field names ordered from the most significant bit down.
func (r *Register) Names() []string {
	names := make([]string, 0, len(r.fields))
	for k := range r.fields {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		return r.fields[names[i]].Index > r.fields[names[j]].Index
	})
	return names
}

func (r *Register) allAttributes() map[string]uint16 {
	out := make(map[string]uint16)
	for k := range r.fields {
		out[k] = r.GetField(k)
	}
	return out
}

func (r Register) String() string {
	s := strings.Builder{}
	s.WriteString(r.Name)
	for _, k := range r.Names() {
		s.WriteString(fmt.Sprintf(" %s=%d", k, r.GetField(k)))
	}
	return s.String()
}
