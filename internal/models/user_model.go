package models

import "go.mongodb.org/mongo-driver/bson"

// Record is an untyped request or stored document. The store imposes no
// schema beyond the required keys each route checks.
type Record = bson.M

const UserCollection = "users"

// UserRequiredKeys are the fields a user must carry on creation, in report order.
var UserRequiredKeys = []string{"name", "age", "weight"}
