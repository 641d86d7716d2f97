package queries

import (
	"gorm.io/gorm"
)

// bagSummaries selects bags with their payload summed over cuboids.
func bagSummaries(db *gorm.DB) *gorm.DB {
	return db.Table("bags AS b").
		Select("b.id, b.title, b.volume, COALESCE(SUM(c.volume), 0) AS payload_volume").
		Joins("LEFT JOIN cuboids AS c ON c.bag_id = b.id").
		Group("b.id, b.title, b.volume").
		Order("b.id")
}

// cuboidsWithBag selects cuboids joined with a summary of their bag.
func cuboidsWithBag(db *gorm.DB) *gorm.DB {
	return db.Table("cuboids AS c").
		Select(`c.id, c.width, c.height, c.depth, c.volume, c.bag_id,
			b.title AS bag_title,
			b.volume AS bag_volume,
			COALESCE(p.payload_volume, 0) AS bag_payload_volume`).
		Joins("JOIN bags AS b ON b.id = c.bag_id").
		Joins(`LEFT JOIN (
			SELECT bag_id, SUM(volume) AS payload_volume FROM cuboids GROUP BY bag_id
		) AS p ON p.bag_id = c.bag_id`).
		Order("c.id")
}

// plainCuboids selects cuboid columns only.
func plainCuboids(db *gorm.DB) *gorm.DB {
	return db.Table("cuboids").
		Select("id, width, height, depth, volume, bag_id").
		Order("id")
}
