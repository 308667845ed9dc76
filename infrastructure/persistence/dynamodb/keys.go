// Package dynamodb implements the repository ports on a single DynamoDB
// table. Profiles and items share the table: both live under the owner's
// partition key, distinguished by the sort key.
//
//	pk = USER#<email>   sk = PROFILE       account profile
//	pk = USER#<email>   sk = ITEM#<uuid>   one food item
package dynamodb

import "strings"

const (
	userKeyPrefix = "USER#"
	itemKeyPrefix = "ITEM#"
	profileSK     = "PROFILE"
)

func userPK(email string) string {
	return userKeyPrefix + email
}

func itemSK(itemID string) string {
	return itemKeyPrefix + itemID
}

// emailFromPK recovers the owner email from a partition key.
func emailFromPK(pk string) string {
	return strings.TrimPrefix(pk, userKeyPrefix)
}
