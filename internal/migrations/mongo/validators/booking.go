package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"room_id",
			"customer_name",
			"customer_email",
			"date",
			"slot",
			"price_cents",
			"status",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"room_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"customer_name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"customer_email": bson.M{
				"bsonType": "string",
			},

			"customer_phone": bson.M{
				"bsonType": "string",
			},

			"date": bson.M{
				"bsonType": "date",
			},

			"slot": bson.M{
				"bsonType": "string",
				"enum": []string{
					"Morning",
					"Afternoon",
					"Night",
					"FullDay",
				},
			},

			"price_cents": bson.M{
				"bsonType": "long",
				"minimum":  0,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"upcoming",
					"completed",
					"cancelled",
				},
			},

			"payment_ref": bson.M{
				"bsonType": "string",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
