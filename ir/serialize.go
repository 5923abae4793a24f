package ir

// Serializable is implemented by values which can project themselves
// into a document tree.
//
// Records implement Serializable by creating an object and putting one
// member per field:
//
//	func (p *Player) Serialize() *ir.Node {
//		obj := ir.NewObject()
//		obj.Put("name", ir.String(p.Name))
//		obj.Put("id", ir.Uint(p.ID))
//		return obj
//	}
//
// A field is excluded by not putting it.
type Serializable interface {
	Serialize() *Node
}

// Serialize returns y itself, so that existing trees can be put into
// other trees.  Putting or pushing a node moves it: the receiving tree
// takes ownership and later changes through either tree are seen by both.
// A node must not be put into two places; put y.Clone() to reuse it.
func (y *Node) Serialize() *Node {
	return y
}

type Int32 int32

func (v Int32) Serialize() *Node { return FromInt(int32(v)) }

// Uint is an unsigned size.  It serializes as a 32 bit integer: values
// above math.MaxInt32 keep only their low 32 bits, reinterpreted as a
// signed integer.
type Uint uint

func (v Uint) Serialize() *Node { return FromInt(int32(v)) }

type Float64 float64

func (v Float64) Serialize() *Node { return FromFloat(float64(v)) }

type Bool bool

func (v Bool) Serialize() *Node { return FromBool(bool(v)) }

type String string

func (v String) Serialize() *Node { return FromString(string(v)) }

// List serializes as an array of its serialized elements.
type List[T Serializable] []T

func (l List[T]) Serialize() *Node {
	res := NewArray()
	for _, item := range l {
		res.Push(item)
	}
	return res
}

func serialize(v Serializable) *Node {
	if v == nil {
		return Null()
	}
	res := v.Serialize()
	if res == nil {
		return Null()
	}
	return res
}
