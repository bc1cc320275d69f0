package asinine

import "strconv"

// maxOIDArcs bounds the fixed-capacity arc array of an OID. Unused
// trailing slots are always zero, so two OIDs compare lexicographically
// via a plain slice comparison of their arcs.
const maxOIDArcs = 16

// OID is a fixed-capacity sequence of Object Identifier arcs. Arcs is
// always exactly maxOIDArcs long with unused trailing entries zeroed, so
// that Compare reduces to an elementwise walk with no special-casing of
// length.
type OID struct {
	Arcs [maxOIDArcs]uint32
	Num  int
}

// DecodeOID decodes tok as an OBJECT IDENTIFIER (X.690 8.19). tok must be
// a primitive Universal OID token with non-empty content and a
// non-continued final octet.
func DecodeOID(tok Token) (OID, error) {
	var oid OID

	if !Is(tok, ClassUniversal, TagOID) {
		return OID{}, &TagMismatchError{
			ExpectedClass: ClassUniversal, ExpectedTag: TagOID,
			ActualClass: tok.class, ActualTag: tok.tag, ActualCompound: tok.compound,
		}
	}

	data := tok.Data()
	if len(data) == 0 {
		return OID{}, ErrInvalid
	}

	// X.690 8.19.2: the last subidentifier's continuation bit must be 0.
	if data[len(data)-1]&0x80 != 0 {
		return OID{}, ErrInvalid
	}

	var arc uint64
	var arcBits int
	firstArc := true

	for _, b := range data {
		if arc == 0 && b == 0x80 {
			// 8.19.2: the leading octet of a subidentifier must not be 0x80.
			return OID{}, ErrInvalid
		}

		arc = (arc << 7) | uint64(b&0x7F)
		arcBits += 7
		if arcBits > wordBits {
			return OID{}, ErrMemory
		}

		if b&0x80 != 0 {
			continue
		}

		if firstArc {
			// 8.19.4/8.19.5: the first two arcs are packed into one
			// subidentifier; X < 3 is split off, the remainder folds into
			// the second arc (allowing > 39 when the first arc is 2).
			x := arc
			if x > 80 {
				x = 80
			}
			x /= 40
			if !oid.append(uint32(x)) {
				return OID{}, ErrMemory
			}
			arc -= x * 40
			firstArc = false
		}

		if arc > 1<<32-1 {
			return OID{}, ErrMemory
		}
		if !oid.append(uint32(arc)) {
			return OID{}, ErrMemory
		}
		arc, arcBits = 0, 0
	}

	return oid, nil
}

func (o *OID) append(arc uint32) bool {
	if o.Num >= maxOIDArcs {
		return false
	}
	o.Arcs[o.Num] = arc
	o.Num++
	return true
}

// String renders o in dotted notation. It requires at least two arcs, as
// produced by any tok that round-trips through DecodeOID.
func (o OID) String() string {
	if o.Num < 2 {
		return ""
	}

	s := strconv.Itoa(int(o.Arcs[0]))
	for i := 1; i < o.Num; i++ {
		s += "." + strconv.Itoa(int(o.Arcs[i]))
	}
	return s
}

// Equal reports whether o and other represent the same arc sequence.
func (o OID) Equal(other OID) bool {
	if o.Num != other.Num {
		return false
	}
	for i := 0; i < o.Num; i++ {
		if o.Arcs[i] != other.Arcs[i] {
			return false
		}
	}
	return true
}

// EqualArcs reports whether o's arcs match the given literal sequence
// exactly, e.g. EqualArcs(oid, 1, 2, 840, 113549).
func (o OID) EqualArcs(arcs ...uint32) bool {
	if o.Num != len(arcs) {
		return false
	}
	for i, a := range arcs {
		if o.Arcs[i] != a {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically by arc sequence. Because
// unused trailing arcs are always zero, an elementwise comparison over
// the full fixed-size array gives the same order as comparing the
// (variable-length) arc sequences directly, with a shorter prefix sorting
// before a longer one that shares it.
func Compare(a, b OID) int {
	for i := 0; i < maxOIDArcs; i++ {
		if a.Arcs[i] != b.Arcs[i] {
			if a.Arcs[i] < b.Arcs[i] {
				return -1
			}
			return 1
		}
	}
	if a.Num != b.Num {
		if a.Num < b.Num {
			return -1
		}
		return 1
	}
	return 0
}
