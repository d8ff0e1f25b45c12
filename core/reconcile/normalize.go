package reconcile

import (
	"encoding/json"
	"fmt"
	"strings"

	"metabuild-hub/core/assets"
	"metabuild-hub/core/utils"
)

// NormalizeNFT converts a listing entry of owner into a DisplayItem.
// It is pure and never panics: unreadable metadata degrades to the
// collection's values and then to fixed defaults.
func NormalizeNFT(raw RawNFTRecord, owner CollectionDescriptor, images ImageResolver) DisplayItem {
	nft := nftMetadata(raw.Envelope)
	coll := owner.Metadata

	sector := utils.FirstNonEmpty(utils.StringField(nft, "sector"), utils.StringField(coll, "sector"), DefaultSector)

	return DisplayItem{
		ID:           TokenText(raw.TokenIdentifier),
		Title:        title(nft, raw.Envelope, owner),
		Description:  sector,
		ImageURL:     imageURL(nft, coll, images),
		Organizer:    utils.FirstNonEmpty(utils.StringField(nft, "organizer"), utils.StringField(nft, "organizerName"), utils.StringField(coll, "createdBy"), DefaultOrganizer),
		CollectionID: owner.CanisterKey,
		Sector:       sector,
		SubSector:    utils.FirstNonEmpty(utils.StringField(nft, "subSector"), utils.StringField(coll, "subSector"), DefaultSubSector),
	}
}

// TokenText renders a token identifier as a string. It prefers a text form,
// then a serialized principal, then the value itself, then its JSON encoding.
func TokenText(v any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("%v", v)
		}
	}()

	switch t := v.(type) {
	case nil:
		return ""
	case Texter:
		return t.Text()
	case map[string]any:
		if id, ok := t[IdentityField].(string); ok {
			return id
		}
	case string:
		return t
	case json.Number:
		return t.String()
	}

	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}

func title(nft map[string]any, envelope any, owner CollectionDescriptor) string {
	if name := utils.FirstNonEmpty(utils.StringField(nft, "name"), utils.StringField(nft, "fairName"), nonfungibleName(envelope)); name != "" {
		return name
	}
	if stripped := strings.TrimPrefix(owner.DisplayName, FairPrefix); stripped != owner.DisplayName && strings.TrimSpace(stripped) != "" {
		return stripped
	}
	if strings.TrimSpace(owner.DisplayName) != "" {
		return owner.DisplayName
	}
	return UntitledLabel
}

func imageURL(nft, coll map[string]any, images ImageResolver) string {
	ref := utils.FirstNonEmpty(utils.StringField(nft, "imageUrl"), utils.StringField(coll, "imageUrl"))
	if utils.IsUnsetText(ref) || images == nil {
		return assets.DefaultFallback
	}
	return images.ImageURL(ref)
}

// nonfungible returns the nonfungible container of an NFT envelope.
func nonfungible(envelope any) map[string]any {
	env, ok := envelope.(map[string]any)
	if !ok {
		return nil
	}
	nf, _ := env["nonfungible"].(map[string]any)
	return nf
}

func nonfungibleName(envelope any) string {
	return utils.StringField(nonfungible(envelope), "name")
}

// nftMetadata decodes the authored JSON stored at
// nonfungible.metadata[0].json. Missing or invalid metadata yields an empty map.
func nftMetadata(envelope any) map[string]any {
	nf := nonfungible(envelope)
	if nf == nil {
		return map[string]any{}
	}

	container := nf["metadata"]
	if opt, ok := container.([]any); ok {
		if len(opt) == 0 {
			return map[string]any{}
		}
		container = opt[0]
	}

	switch t := container.(type) {
	case map[string]any:
		if s, ok := t["json"].(string); ok {
			return parseObject(s)
		}
	case string:
		return parseObject(t)
	}
	return map[string]any{}
}
