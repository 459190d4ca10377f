package registers

import "fmt"

// Kind distinguishes the two field shapes a register layout can contain.
type Kind uint8

const (
	// Number is an unsigned field occupying a contiguous run of bits.
	Number Kind = iota

	// Flag is a single boolean bit.
	Flag
)

// Field describes one entry in a register's bit layout: where the field
// starts, how wide it is, and the datasheet name it goes by.
type Field struct {
	Name  string
	Kind  Kind
	Start uint8
	Size  uint8
}

// binding ties a layout field to its storage inside a register struct.
// Exactly one of num/flag is set, matching the field kind.
type binding struct {
	field Field
	num   *uint32
	flag  *bool
}

func num(name string, size, start uint8, v *uint32) binding {
	return binding{field: Field{Name: name, Kind: Number, Start: start, Size: size}, num: v}
}

func flg(name string, bit uint8, v *bool) binding {
	return binding{field: Field{Name: name, Kind: Flag, Start: bit, Size: 1}, flag: v}
}

// encode packs a binding table into a payload. Fields occupy disjoint bit
// ranges, so plain OR accumulation cannot cross-talk.
func encode(bindings []binding) uint32 {
	var payload uint32
	for _, b := range bindings {
		switch b.field.Kind {
		case Number:
			v := *b.num
			if v >= 1<<b.field.Size {
				panic(fmt.Sprintf("registers: %s must fit in %d bits, got %d",
					b.field.Name, b.field.Size, v))
			}
			payload |= v << b.field.Start
		case Flag:
			if *b.flag {
				payload |= 1 << b.field.Start
			}
		}
	}
	return payload
}

// decode unpacks a payload through a binding table. Bits outside the layout
// are ignored.
func decode(payload uint32, bindings []binding) {
	for _, b := range bindings {
		switch b.field.Kind {
		case Number:
			*b.num = (payload >> b.field.Start) & (1<<b.field.Size - 1)
		case Flag:
			*b.flag = (payload>>b.field.Start)&1 == 1
		}
	}
}
