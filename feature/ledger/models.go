package ledger

// Principal is a textual identity of a user or a collection canister.
type Principal string

// Text returns the canonical text form of the principal.
func (p Principal) Text() string {
	return string(p)
}

// User is a registered account.
type User struct {
	Principal string `gorm:"column:principal;primaryKey;type:varchar(64)"`
	Name      string `gorm:"column:name;type:varchar(255)"`
	CreatedAt int64  `gorm:"column:created_at;autoCreateTime:nano"`
}

func (User) TableName() string {
	return "users"
}

// Collection is an NFT collection canister.
type Collection struct {
	CanisterID string `gorm:"column:canister_id;primaryKey;type:varchar(64)"`
	Creator    string `gorm:"column:creator;index;type:varchar(64)"`
	Name       string `gorm:"column:name;type:varchar(255)"`
	Symbol     string `gorm:"column:symbol;type:varchar(32)"`
	Metadata   string `gorm:"column:metadata;type:text"`
	CreatedAt  int64  `gorm:"column:created_at;autoCreateTime:nano"`
}

func (Collection) TableName() string {
	return "collections"
}

// NFT is a token minted in a collection.
type NFT struct {
	ID              uint   `gorm:"column:id;primaryKey;autoIncrement"`
	CollectionID    string `gorm:"column:collection_id;index;type:varchar(64)"`
	TokenIndex      uint64 `gorm:"column:token_index"`
	TokenIdentifier string `gorm:"column:token_identifier;uniqueIndex;type:varchar(128)"`
	Owner           string `gorm:"column:owner;index;type:varchar(64)"`
	Name            string `gorm:"column:name;type:varchar(255)"`
	Description     string `gorm:"column:description;type:text"`
	Asset           string `gorm:"column:asset;type:varchar(255)"`
	Thumbnail       string `gorm:"column:thumbnail;type:varchar(255)"`
	Metadata        string `gorm:"column:metadata;type:text"`
}

func (NFT) TableName() string {
	return "nfts"
}

// Models returns the ledger models in migration order.
func Models() []any {
	return []any{User{}, Collection{}, NFT{}}
}
