package field

// PartField selects an attribute of a full story part.
type PartField struct{ ident }

var (
	PartID              = PartField{simple("id")}
	PartTitle           = PartField{simple("title")}
	PartURL             = PartField{simple("url")}
	PartRating          = PartField{simple("rating")}
	PartDraft           = PartField{simple("draft")}
	PartModifyDate      = PartField{simple("modifyDate")}
	PartCreateDate      = PartField{simple("createDate")}
	PartHasBannedImages = PartField{simple("hasBannedImages")}
	PartLength          = PartField{simple("length")}
	PartVideoID         = PartField{simple("videoId")}
	PartPhotoURL        = PartField{simple("photoUrl")}
	PartCommentCount    = PartField{simple("commentCount")}
	PartVoteCount       = PartField{simple("voteCount")}
	PartReadCount       = PartField{simple("readCount")}
	PartGroupID         = PartField{simple("groupId")}
	PartDeleted         = PartField{simple("deleted")}
)

// PartTextURL selects the part's text location object with the given
// sub-fields.
func PartTextURL(sub ...TextURLField) PartField {
	return PartField{group("text_url", asFields(sub))}
}

// PartGroup selects the part's parent story with the given sub-fields.
func PartGroup(sub ...StoryField) PartField {
	return PartField{group("group", asFields(sub))}
}

// DefaultPartFields returns the selection used when a part request names no
// fields.
func DefaultPartFields() []PartField {
	return []PartField{PartID, PartTitle, PartURL}
}

// PartStubField selects an attribute of the lightweight part stub embedded
// in story part lists.
type PartStubField struct{ ident }

var (
	PartStubID              = PartStubField{simple("id")}
	PartStubTitle           = PartStubField{simple("title")}
	PartStubURL             = PartStubField{simple("url")}
	PartStubRating          = PartStubField{simple("rating")}
	PartStubDraft           = PartStubField{simple("draft")}
	PartStubCreateDate      = PartStubField{simple("createDate")}
	PartStubModifyDate      = PartStubField{simple("modifyDate")}
	PartStubHasBannedImages = PartStubField{simple("hasBannedImages")}
	PartStubLength          = PartStubField{simple("length")}
	PartStubVideoID         = PartStubField{simple("videoId")}
	PartStubPhotoURL        = PartStubField{simple("photoUrl")}
	PartStubCommentCount    = PartStubField{simple("commentCount")}
	PartStubVoteCount       = PartStubField{simple("voteCount")}
	PartStubReadCount       = PartStubField{simple("readCount")}

	// PartStubVoted reports whether the authenticated user voted for the
	// part. It can only be requested over an authenticated session.
	PartStubVoted = PartStubField{authed("voted")}

	PartStubDeleted = PartStubField{simple("deleted")}
)

// PartStubTextURL selects the stub's text location object with the given
// sub-fields.
func PartStubTextURL(sub ...TextURLField) PartStubField {
	return PartStubField{group("text_url", asFields(sub))}
}

// DefaultPartStubFields returns the default part stub sub-selection.
func DefaultPartStubFields() []PartStubField {
	return []PartStubField{
		PartStubID,
		PartStubTitle,
		PartStubTextURL(TextURLText),
		PartStubRating,
		PartStubVideoID,
		PartStubPhotoURL,
		PartStubModifyDate,
	}
}

// PartReferenceField selects an attribute of a lightweight part reference.
type PartReferenceField struct{ ident }

var (
	PartReferenceID         = PartReferenceField{simple("id")}
	PartReferenceCreateDate = PartReferenceField{simple("createDate")}
)

// DefaultPartReferenceFields returns the default part reference
// sub-selection.
func DefaultPartReferenceFields() []PartReferenceField {
	return []PartReferenceField{PartReferenceID}
}
