package stlvec

// Prefix is the leading component of every exported boundary name.
const Prefix = "stlvec"

// Op identifies one boundary operation.
type Op int

const (
	OpNew Op = iota
	OpDelete
	OpSize
	OpAt
	OpSet
	OpPushBack
	OpInsert
	OpErase
	OpEraseSlice
	OpFind
	OpPopBack
	OpCount
	OpSort
	OpReverse
	OpEqual

	numOps
)

var opNames = [numOps]string{
	OpNew:        "new",
	OpDelete:     "delete",
	OpSize:       "size",
	OpAt:         "at",
	OpSet:        "set",
	OpPushBack:   "push_back",
	OpInsert:     "insert",
	OpErase:      "erase",
	OpEraseSlice: "erase_slice",
	OpFind:       "find",
	OpPopBack:    "pop_back",
	OpCount:      "count",
	OpSort:       "sort",
	OpReverse:    "reverse",
	OpEqual:      "equal",
}

func (o Op) String() string {
	if o >= 0 && o < numOps {
		return opNames[o]
	}
	return "unknown"
}

// Operations lists every per-type operation in table order.
func Operations() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// ElementType describes one instantiation of the boundary table.
type ElementType struct {
	// Name is the type component of exported names ("int", "long").
	Name string
	// Bits is the element width; 0 means platform width.
	Bits int
}

var (
	TypeInt  = ElementType{Name: "int", Bits: 32}
	TypeLong = ElementType{Name: "long", Bits: 0}
)

// ElementTypes lists the instantiated element types.
func ElementTypes() []ElementType {
	return []ElementType{TypeInt, TypeLong}
}

// ExportName returns "<prefix>_<type>_<op>".
func ExportName(prefix string, typ ElementType, op Op) string {
	return prefix + "_" + typ.Name + "_" + op.String()
}

// Diagnostic function names, shared by every element type.
const (
	FuncLastError   = Prefix + "_last_error"
	FuncClearError  = Prefix + "_clear_error"
	FuncLiveHandles = Prefix + "_live_handles"
	FuncABIVersion  = Prefix + "_abi_version"
)
