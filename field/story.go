package field

// StoryField selects an attribute of a story.
type StoryField struct{ ident }

var (
	StoryID             = StoryField{simple("id")}
	StoryTitle          = StoryField{simple("title")}
	StoryLength         = StoryField{simple("length")}
	StoryCreateDate     = StoryField{simple("createDate")}
	StoryModifyDate     = StoryField{simple("modifyDate")}
	StoryVoteCount      = StoryField{simple("voteCount")}
	StoryReadCount      = StoryField{simple("readCount")}
	StoryCommentCount   = StoryField{simple("commentCount")}
	StoryDescription    = StoryField{simple("description")}
	StoryCover          = StoryField{simple("cover")}
	StoryCoverTimestamp = StoryField{simple("cover_timestamp")}
	StoryCompleted      = StoryField{simple("completed")}
	StoryCategories     = StoryField{simple("categories")}
	StoryTags           = StoryField{simple("tags")}
	StoryRating         = StoryField{simple("rating")}
	StoryMature         = StoryField{simple("mature")}
	StoryCopyright      = StoryField{simple("copyright")}
	StoryURL            = StoryField{simple("url")}
	StoryNumParts       = StoryField{simple("numParts")}
	StoryFirstPartID    = StoryField{simple("firstPartId")}
	StoryDeleted        = StoryField{simple("deleted")}
)

// StoryLanguage selects the story's language object with the given
// sub-fields.
func StoryLanguage(sub ...LanguageField) StoryField {
	return StoryField{group("language", asFields(sub))}
}

// StoryUser selects the story's author as a user stub with the given
// sub-fields.
func StoryUser(sub ...UserStubField) StoryField {
	return StoryField{group("user", asFields(sub))}
}

// StoryFirstPublishedPart selects a reference to the first published part
// with the given sub-fields.
func StoryFirstPublishedPart(sub ...PartReferenceField) StoryField {
	return StoryField{group("firstPublishedPart", asFields(sub))}
}

// StoryLastPublishedPart selects a reference to the last published part with
// the given sub-fields.
func StoryLastPublishedPart(sub ...PartReferenceField) StoryField {
	return StoryField{group("lastPublishedPart", asFields(sub))}
}

// StoryParts selects the story's part list as stubs with the given
// sub-fields for each stub.
func StoryParts(sub ...PartStubField) StoryField {
	return StoryField{group("parts", asFields(sub))}
}

// DefaultStoryFields returns the selection used when a story request names
// no fields.
func DefaultStoryFields() []StoryField {
	return []StoryField{
		StoryID,
		StoryTitle,
		StoryLength,
		StoryCreateDate,
		StoryModifyDate,
		StoryVoteCount,
		StoryReadCount,
		StoryCommentCount,
		StoryLanguage(LanguageID),
		StoryDescription,
		StoryCover,
		StoryCoverTimestamp,
		StoryCompleted,
		StoryCategories,
		StoryTags,
		StoryRating,
		StoryMature,
		StoryCopyright,
		StoryURL,
		StoryNumParts,
		StoryFirstPublishedPart(PartReferenceID),
		StoryLastPublishedPart(PartReferenceID),
		StoryParts(PartStubID),
		StoryDeleted,
		StoryUser(UserStubUsername),
	}
}

// LanguageField selects an attribute of a language object.
type LanguageField struct{ ident }

var (
	LanguageID   = LanguageField{simple("id")}
	LanguageName = LanguageField{simple("name")}
)

// DefaultLanguageFields returns the default language sub-selection.
func DefaultLanguageFields() []LanguageField {
	return []LanguageField{LanguageID}
}
