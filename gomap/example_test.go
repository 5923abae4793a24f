package gomap_test

import (
	"fmt"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/gomap"
)

type Player struct {
	Name string `rjson:"name"`
	ID   uint   `rjson:"id"`
}

type Guild struct {
	Admin   string    `rjson:"admin"`
	Players []*Player `rjson:"player"`
}

func ExampleToIR() {
	node, err := gomap.ToIR(&Guild{
		Admin:   "Kayaba Akihiko",
		Players: []*Player{{Name: "Kirito"}, {Name: "Asuna", ID: 1}},
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(encode.Text(node))
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
