package model

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/google/uuid"
)

func CreateID() UserID {
	uuid, _ := uuid.NewRandom()
	return UserID(base58.Encode(uuid[:]))
}
