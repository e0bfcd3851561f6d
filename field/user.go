package field

// UserField selects an attribute of a full user profile.
type UserField struct{ ident }

var (
	UserUsername            = UserField{simple("username")}
	UserAvatar              = UserField{simple("avatar")}
	UserIsPrivate           = UserField{simple("isPrivate")}
	UserBackgroundURL       = UserField{simple("backgroundUrl")}
	UserName                = UserField{simple("name")} // display name, not the username
	UserDescription         = UserField{simple("description")}
	UserBadges              = UserField{simple("badges")}
	UserStatus              = UserField{simple("status")}
	UserGender              = UserField{simple("gender")}
	UserGenderCode          = UserField{simple("genderCode")}
	UserLanguage            = UserField{simple("language")}
	UserLocale              = UserField{simple("locale")}
	UserCreateDate          = UserField{simple("createDate")}
	UserModifyDate          = UserField{simple("modifyDate")}
	UserLocation            = UserField{simple("location")}
	UserVerified            = UserField{simple("verified")}
	UserAmbassador          = UserField{simple("ambassador")}
	UserFacebook            = UserField{simple("facebook")}
	UserWebsite             = UserField{simple("website")}
	UserLulu                = UserField{simple("lulu")}
	UserSmashwords          = UserField{simple("smashwords")}
	UserBubok               = UserField{simple("bubok")}
	UserVotesReceived       = UserField{simple("votesReceived")}
	UserNumStoriesPublished = UserField{simple("numStoriesPublished")}
	UserNumFollowing        = UserField{simple("numFollowing")}
	UserNumFollowers        = UserField{simple("numFollowers")}
	UserNumMessages         = UserField{simple("numMessages")}
	UserNumLists            = UserField{simple("numLists")}
	UserVerifiedEmail       = UserField{simple("verified_email")}
	UserPreferredCategories = UserField{simple("preferred_categories")}
	UserAllowCrawler        = UserField{simple("allowCrawler")}
	UserDeeplink            = UserField{simple("deeplink")}
)

// DefaultUserFields returns the selection used when a user request names no
// fields.
func DefaultUserFields() []UserField {
	return []UserField{
		UserUsername,
		UserAvatar,
		UserBackgroundURL,
		UserName,
		UserDescription,
		UserCreateDate,
		UserModifyDate,
		UserVotesReceived,
		UserNumStoriesPublished,
		UserNumFollowing,
		UserNumFollowers,
		UserNumMessages,
		UserNumLists,
	}
}

// UserStubField selects an attribute of the lightweight user stub embedded
// in other resources.
type UserStubField struct{ ident }

var (
	UserStubUsername = UserStubField{simple("name")} // the stub calls the username "name"
	UserStubAvatar   = UserStubField{simple("avatar")}
	UserStubFullName = UserStubField{simple("fullname")}
	UserStubVerified = UserStubField{simple("verified")}
)

// DefaultUserStubFields returns the default user stub sub-selection.
func DefaultUserStubFields() []UserStubField {
	return []UserStubField{UserStubUsername, UserStubAvatar}
}
