package http

import (
	"cuboids/internal/core/application/usecases/queries"
	"cuboids/internal/generated/servers"
)

func toCuboid(c queries.CuboidReadModel) servers.Cuboid {
	out := servers.Cuboid{
		Id:     c.ID.Int64(),
		Width:  c.Width,
		Height: c.Height,
		Depth:  c.Depth,
		Volume: c.Volume,
		BagId:  c.BagID.Int64(),
	}

	if c.Bag != nil {
		b := toBagSummary(*c.Bag)
		out.Bag = &b
	}

	return out
}

func toBagSummary(b queries.BagSummary) servers.Bag {
	return servers.Bag{
		Id:              b.ID.Int64(),
		Title:           b.Title,
		Volume:          b.Volume,
		PayloadVolume:   b.PayloadVolume,
		AvailableVolume: b.AvailableVolume,
	}
}

func toBag(b queries.BagReadModel) servers.Bag {
	out := toBagSummary(b.BagSummary)

	cuboids := make([]servers.Cuboid, len(b.Cuboids))
	for i, c := range b.Cuboids {
		cuboids[i] = toCuboid(c)
	}
	out.Cuboids = &cuboids

	return out
}
