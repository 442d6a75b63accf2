// Package toggle builds the atomic add-or-remove update used for likes and
// favorites.
//
// The identifier list is treated as a set: if the user id is present it is
// removed, otherwise it is appended, and the cached count is recomputed from
// the new list length. Everything happens inside one pipeline update, so two
// concurrent toggles on the same document cannot lose each other's write and
// the count can never drift from the list.
package toggle

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Pipeline returns the update pipeline that toggles userID's membership in
// the named list field and refreshes its count field.
func Pipeline(field, countField, userID string) mongo.Pipeline {
	// A missing list reads as empty so the first toggle on an old document
	// still works.
	current := bson.M{"$ifNull": bson.A{"$" + field, bson.A{}}}

	return mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			field: bson.M{"$cond": bson.A{
				bson.M{"$in": bson.A{userID, current}},
				bson.M{"$filter": bson.M{
					"input": current,
					"as":    "u",
					"cond":  bson.M{"$ne": bson.A{"$$u", userID}},
				}},
				bson.M{"$concatArrays": bson.A{current, bson.A{userID}}},
			}},
		}}},
		{{Key: "$set", Value: bson.M{
			countField: bson.M{"$size": "$" + field},
		}}},
	}
}
