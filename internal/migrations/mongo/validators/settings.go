package validators

import "go.mongodb.org/mongo-driver/bson"

var timeOfDayPattern = "^([01][0-9]|2[0-3]):[0-5][0-9]$"

var SettingsValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"site_name",
			"open_days",
			"morning_start",
			"morning_end",
			"afternoon_start",
			"afternoon_end",
			"night_start",
			"night_end",
			"time_zone",
			"currency",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"site_name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"open_days": bson.M{
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

			"morning_start":   bson.M{"bsonType": "string", "pattern": timeOfDayPattern},
			"morning_end":     bson.M{"bsonType": "string", "pattern": timeOfDayPattern},
			"afternoon_start": bson.M{"bsonType": "string", "pattern": timeOfDayPattern},
			"afternoon_end":   bson.M{"bsonType": "string", "pattern": timeOfDayPattern},
			"night_start":     bson.M{"bsonType": "string", "pattern": timeOfDayPattern},
			"night_end":       bson.M{"bsonType": "string", "pattern": timeOfDayPattern},

			"time_zone": bson.M{
				"bsonType": "string",
			},

			"currency": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 3,
			},

			"max_discount_percent": bson.M{
				"bsonType": "int",
				"minimum":  0,
				"maximum":  100,
			},

			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
