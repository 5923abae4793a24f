package ir_test

import (
	"fmt"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/ir"
)

type Guild struct {
	Admin   string
	Players []*Player
}

func (g *Guild) Serialize() *ir.Node {
	obj := ir.NewObject()
	obj.Put("admin", ir.String(g.Admin))
	obj.Put("player", ir.List[*Player](g.Players))
	return obj
}

type Player struct {
	Name string
	ID   uint
}

func (p *Player) Serialize() *ir.Node {
	obj := ir.NewObject()
	obj.Put("name", ir.String(p.Name))
	obj.Put("id", ir.Uint(p.ID))
	return obj
}

func ExampleSerializable() {
	g := &Guild{
		Admin: "Kayaba Akihiko",
		Players: []*Player{
			{Name: "Kirito", ID: 0},
			{Name: "Asuna", ID: 1},
		},
	}
	fmt.Println(encode.TextOf(g))
	// Output:
	// {
	//   "admin": "Kayaba Akihiko",
	//   "player": [{
	//     "id": 0,
	//     "name": "Kirito"
	//   },{
	//     "id": 1,
	//     "name": "Asuna"
	//   }]
	// }
}

func ExampleNode_GetPath() {
	doc := ir.NewObject()
	doc.Put("tags", ir.List[ir.String]{"a", "b"})
	n, err := doc.GetPath("$.tags[1]")
	if err != nil {
		panic(err)
	}
	s, _ := n.Str()
	fmt.Println(s)
	// Output: b
}
