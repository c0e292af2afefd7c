package validators

import "go.mongodb.org/mongo-driver/bson"

var RecurringBookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"room_id",
			"customer_name",
			"customer_email",
			"start_date",
			"end_date",
			"weekdays",
			"slot",
			"pattern",
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

			"start_date": bson.M{
				"bsonType": "date",
			},

			"end_date": bson.M{
				"bsonType": "date",
			},

			"weekdays": bson.M{
				"bsonType": "array",
				"minItems": 1,
				"maxItems": 7,
				"items": bson.M{
					"bsonType": "string",
					"enum": []string{
						"Monday",
						"Tuesday",
						"Wednesday",
						"Thursday",
						"Friday",
						"Saturday",
						"Sunday",
					},
				},
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

			"pattern": bson.M{
				"bsonType": "string",
				"enum": []string{
					"Weekly",
					"Bi-Weekly",
					"Monthly",
				},
			},

			"discount_percent": bson.M{
				"bsonType": "int",
				"minimum":  0,
				"maximum":  100,
			},

			"occurrences": bson.M{
				"bsonType": "int",
				"minimum":  0,
			},

			"revenue_before_discount_cents": bson.M{
				"bsonType": "long",
				"minimum":  0,
			},

			"discount_amount_cents": bson.M{
				"bsonType": "long",
				"minimum":  0,
			},

			"total_revenue_cents": bson.M{
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

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
