package ir

func Truth(node *Node) bool {
	switch node.Kind() {
	case ObjectType, ArrayType:
		return node.Len() != 0
	case StringType:
		return node.value.String != ""
	case IntType:
		return node.value.Int != 0
	case FloatType:
		return node.value.Float != 0.0
	case BoolType:
		return node.value.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}
