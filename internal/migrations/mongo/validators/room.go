package validators

import "go.mongodb.org/mongo-driver/bson"

var RoomValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"capacity",
			"morning_price_cents",
			"afternoon_price_cents",
			"night_price_cents",
			"active",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"floor": bson.M{
				"bsonType": "int",
				"minimum":  -5,
				"maximum":  100,
			},

			"capacity": bson.M{
				"bsonType": "int",
				"minimum":  1,
				"maximum":  500,
			},

			"amenities": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"morning_price_cents": bson.M{
				"bsonType": "long",
				"minimum":  0,
			},

			"afternoon_price_cents": bson.M{
				"bsonType": "long",
				"minimum":  0,
			},

			"night_price_cents": bson.M{
				"bsonType": "long",
				"minimum":  0,
			},

			"contact_phone": bson.M{
				"bsonType": "string",
			},

			"active": bson.M{
				"bsonType": "bool",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
