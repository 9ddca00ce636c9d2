package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"date",
			"time_key",
			"amount",
			"customer",
			"status",
			"expires_at",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{4}-\d{2}-\d{2}$`,
			},

			"booking_type": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},

			"time_slot": bson.M{
				"bsonType":  "string",
				"maxLength": 50,
			},

			"custom_time": bson.M{
				"bsonType":  "string",
				"maxLength": 50,
			},

			"time_key": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 60,
			},

			"amount": bson.M{
				"bsonType": []string{"long", "int"},
				"minimum":  1,
			},

			"customer": bson.M{
				"bsonType": "object",
				"required": []string{"name", "email"},
				"properties": bson.M{
					"name": bson.M{
						"bsonType":  "string",
						"minLength": 2,
						"maxLength": 100,
					},
					"email": bson.M{
						"bsonType":  "string",
						"maxLength": 254,
					},
					"phone": bson.M{
						"bsonType":  "string",
						"maxLength": 20,
					},
				},
			},

			"status": bson.M{
				"bsonType": "string",
				"enum":     []string{"held", "confirmed"},
			},

			"expires_at": bson.M{
				"bsonType": "date",
			},

			"reference": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}

var HoldLockValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"expires_at", "created_at"},
		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},
			"expires_at": bson.M{
				"bsonType": "date",
			},
			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
