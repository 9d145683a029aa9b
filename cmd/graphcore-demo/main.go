package main

import (
	"fmt"

	"github.com/prahaladd/graphcore/core"
	"github.com/prahaladd/graphcore/datastore"
	_ "github.com/prahaladd/graphcore/memory"
	"github.com/prahaladd/graphcore/query"
)

func main() {
	fmt.Println("graphcore demo: in-memory engine")

	store, err := datastore.Open("memory")
	if err != nil {
		fmt.Println("error opening memory datastore:", err)
		return
	}

	tx, err := store.Transaction()
	if err != nil {
		fmt.Println("error opening transaction:", err)
		return
	}

	personType, err := core.NewType("person")
	if err != nil {
		fmt.Println("error building type:", err)
		return
	}
	follows, err := core.NewType("follows")
	if err != nil {
		fmt.Println("error building type:", err)
		return
	}

	tom := core.NewVertex(personType)
	jerry := core.NewVertex(personType)

	if _, err := tx.CreateVertex(tom); err != nil {
		fmt.Println("error creating vertex:", err)
		return
	}
	if _, err := tx.CreateVertex(jerry); err != nil {
		fmt.Println("error creating vertex:", err)
		return
	}
	fmt.Println("created vertices:", tom.ID, jerry.ID)

	if err := tx.SetVertexProperties(query.NewVerticesByID(tom.ID), "name", "Tom"); err != nil {
		fmt.Println("error setting vertex property:", err)
		return
	}

	edgeKey := core.NewEdgeKey(tom.ID, follows, jerry.ID)
	created, err := tx.CreateEdge(edgeKey)
	if err != nil {
		fmt.Println("error creating edge:", err)
		return
	}
	fmt.Println("created edge:", created)

	outbound := query.OutboundVertices(
		query.NewEdgesByKey(edgeKey),
		10,
	)
	vertices, err := tx.GetVertices(outbound)
	if err != nil {
		fmt.Println("error querying vertices:", err)
		return
	}
	for _, v := range vertices {
		fmt.Printf("found vertex: id=%s type=%s\n", v.ID, v.T)
	}

	names, err := tx.GetVertexProperties(query.NewVerticesByID(tom.ID), "name")
	if err != nil {
		fmt.Println("error reading vertex property:", err)
		return
	}
	for _, p := range names {
		fmt.Printf("property: owner=%s name=%s value=%v\n", p.OwnerID, p.Name, p.Value)
	}

	count, err := tx.GetEdgeCount(tom.ID, nil, query.Outbound)
	if err != nil {
		fmt.Println("error counting edges:", err)
		return
	}
	fmt.Println("outbound edge count for tom:", count)
}
