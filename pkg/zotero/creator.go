package zotero

import (
	"fmt"
	"strings"
)

// CreatorRole is the creatorType of a creator. The set of roles grows with the
// service, so roles outside the known list are kept as they are.
type CreatorRole string

const (
	CreatorRole_Author         CreatorRole = "author"
	CreatorRole_Contributor    CreatorRole = "contributor"
	CreatorRole_Editor         CreatorRole = "editor"
	CreatorRole_SeriesEditor   CreatorRole = "seriesEditor"
	CreatorRole_Translator     CreatorRole = "translator"
	CreatorRole_BookAuthor     CreatorRole = "bookAuthor"
	CreatorRole_ReviewedAuthor CreatorRole = "reviewedAuthor"
	CreatorRole_Artist         CreatorRole = "artist"
	CreatorRole_Performer      CreatorRole = "performer"
	CreatorRole_Composer       CreatorRole = "composer"
	CreatorRole_WordsBy        CreatorRole = "wordsBy"
	CreatorRole_Sponsor        CreatorRole = "sponsor"
	CreatorRole_Cosponsor      CreatorRole = "cosponsor"
	CreatorRole_Counsel        CreatorRole = "counsel"
	CreatorRole_Commenter      CreatorRole = "commenter"
	CreatorRole_Director       CreatorRole = "director"
	CreatorRole_Producer       CreatorRole = "producer"
	CreatorRole_ScriptWriter   CreatorRole = "scriptwriter"
	CreatorRole_CastMember     CreatorRole = "castMember"
	CreatorRole_Guest          CreatorRole = "guest"
	CreatorRole_Interviewee    CreatorRole = "interviewee"
	CreatorRole_Interviewer    CreatorRole = "interviewer"
	CreatorRole_Recipient      CreatorRole = "recipient"
	CreatorRole_Podcaster      CreatorRole = "podcaster"
	CreatorRole_Presenter      CreatorRole = "presenter"
	CreatorRole_Cartographer   CreatorRole = "cartographer"
	CreatorRole_Programmer     CreatorRole = "programmer"
	CreatorRole_Inventor       CreatorRole = "inventor"
	CreatorRole_AttorneyAgent  CreatorRole = "attorneyAgent"
)

var knownCreatorRoles = map[CreatorRole]bool{
	CreatorRole_Author:         true,
	CreatorRole_Contributor:    true,
	CreatorRole_Editor:         true,
	CreatorRole_SeriesEditor:   true,
	CreatorRole_Translator:     true,
	CreatorRole_BookAuthor:     true,
	CreatorRole_ReviewedAuthor: true,
	CreatorRole_Artist:         true,
	CreatorRole_Performer:      true,
	CreatorRole_Composer:       true,
	CreatorRole_WordsBy:        true,
	CreatorRole_Sponsor:        true,
	CreatorRole_Cosponsor:      true,
	CreatorRole_Counsel:        true,
	CreatorRole_Commenter:      true,
	CreatorRole_Director:       true,
	CreatorRole_Producer:       true,
	CreatorRole_ScriptWriter:   true,
	CreatorRole_CastMember:     true,
	CreatorRole_Guest:          true,
	CreatorRole_Interviewee:    true,
	CreatorRole_Interviewer:    true,
	CreatorRole_Recipient:      true,
	CreatorRole_Podcaster:      true,
	CreatorRole_Presenter:      true,
	CreatorRole_Cartographer:   true,
	CreatorRole_Programmer:     true,
	CreatorRole_Inventor:       true,
	CreatorRole_AttorneyAgent:  true,
}

// Known reports whether the role is one of the enumerated roles.
func (r CreatorRole) Known() bool {
	return knownCreatorRoles[r]
}

// Name is either a SplitName or a MergedName.
type Name interface {
	fmt.Stringer
	isName()
}

// SplitName is a personal name. Either part may be missing.
type SplitName struct {
	First *string
	Last  *string
}

func (SplitName) isName() {}

func (n SplitName) String() string {
	var first, last string
	if n.First != nil {
		first = *n.First
	}
	if n.Last != nil {
		last = *n.Last
	}
	return strings.Trim(fmt.Sprintf("%s, %s", last, first), " ,")
}

// MergedName is a single-field name, used for organizations.
type MergedName string

func (MergedName) isName() {}

func (n MergedName) String() string {
	return string(n)
}

type Creator struct {
	Role CreatorRole
	// Name is nil for a creator without any name, written as "name": null.
	// SplitName{} is a creator with neither part set.
	Name Name

	// Unknown keeps members of the creator object which are not modeled.
	Unknown Fields
}

// NewPerson returns a creator with a split name.
func NewPerson(role CreatorRole, first, last string) Creator {
	return Creator{Role: role, Name: SplitName{First: &first, Last: &last}}
}

// NewOrganization returns a creator with a single-field name.
func NewOrganization(role CreatorRole, name string) Creator {
	return Creator{Role: role, Name: MergedName(name)}
}

// Untyped reports whether the role is not one of the known roles. Such
// creators are carried through unchanged.
func (c Creator) Untyped() bool {
	return !c.Role.Known()
}
