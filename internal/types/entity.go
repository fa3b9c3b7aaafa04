package types

import "fmt"

// Entity is the fine-grained semantic tag attached to plain text
type Entity string

const (
	EntityNone             Entity = "none"
	EntityEmail            Entity = "email"
	EntityHexColor         Entity = "hexColor"
	EntityIPAddress        Entity = "ipAddress"
	EntityUUID             Entity = "uuid"
	EntityGitSHA           Entity = "gitSha"
	EntityCoordinates      Entity = "coordinates"
	EntityHashtag          Entity = "hashtag"
	EntityMention          Entity = "mention"
	EntityCurrency         Entity = "currency"
	EntityFilePath         Entity = "filePath"
	EntityTrackingNumber   Entity = "trackingNumber"
	EntityJSON             Entity = "json"
	EntityBase64           Entity = "base64"
	EntityURLEncoded       Entity = "urlEncoded"
	EntityMarkdown         Entity = "markdown"
	EntityCodeSnippet      Entity = "codeSnippet"
	EntityForeignLanguage  Entity = "foreignLanguage"
	EntityPersonalName     Entity = "personalName"
	EntityPlaceName        Entity = "placeName"
	EntityOrganizationName Entity = "organizationName"
	EntityPhoneNumber      Entity = "phoneNumber"
	EntityDate             Entity = "date"
	EntityAddress          Entity = "address"
	EntityTransitInfo      Entity = "transitInfo"
)

// Entities lists all entity tags, EntityNone first
var Entities = []Entity{
	EntityNone,
	EntityEmail,
	EntityHexColor,
	EntityIPAddress,
	EntityUUID,
	EntityGitSHA,
	EntityCoordinates,
	EntityHashtag,
	EntityMention,
	EntityCurrency,
	EntityFilePath,
	EntityTrackingNumber,
	EntityJSON,
	EntityBase64,
	EntityURLEncoded,
	EntityMarkdown,
	EntityCodeSnippet,
	EntityForeignLanguage,
	EntityPersonalName,
	EntityPlaceName,
	EntityOrganizationName,
	EntityPhoneNumber,
	EntityDate,
	EntityAddress,
	EntityTransitInfo,
}

var entityNames = map[Entity]string{
	EntityNone:             "None",
	EntityEmail:            "Email",
	EntityHexColor:         "Color",
	EntityIPAddress:        "IP Address",
	EntityUUID:             "UUID",
	EntityGitSHA:           "Git SHA",
	EntityCoordinates:      "Coordinates",
	EntityHashtag:          "Hashtag",
	EntityMention:          "Mention",
	EntityCurrency:         "Currency",
	EntityFilePath:         "File Path",
	EntityTrackingNumber:   "Tracking Number",
	EntityJSON:             "JSON",
	EntityBase64:           "Base64",
	EntityURLEncoded:       "URL-Encoded",
	EntityMarkdown:         "Markdown",
	EntityCodeSnippet:      "Code",
	EntityForeignLanguage:  "Foreign Language",
	EntityPersonalName:     "Person",
	EntityPlaceName:        "Place",
	EntityOrganizationName: "Organization",
	EntityPhoneNumber:      "Phone Number",
	EntityDate:             "Date",
	EntityAddress:          "Address",
	EntityTransitInfo:      "Transit Info",
}

// DisplayName returns a human-readable name for the tag
func (e Entity) DisplayName() string {
	if name, ok := entityNames[e]; ok {
		return name
	}
	return string(e)
}

// IsNone reports whether no entity was detected
func (e Entity) IsNone() bool {
	return e == EntityNone || e == ""
}

// ParseEntity converts a tag name back into an Entity
func ParseEntity(s string) (Entity, error) {
	for _, e := range Entities {
		if string(e) == s {
			return e, nil
		}
	}
	return EntityNone, fmt.Errorf("unknown entity tag %q", s)
}
