package zotero

// ItemType is the value of the itemType discriminator of an item's data object.
type ItemType string

const (
	ItemType_Artwork             ItemType = "artwork"
	ItemType_AudioRecording      ItemType = "audioRecording"
	ItemType_Bill                ItemType = "bill"
	ItemType_BlogPost            ItemType = "blogPost"
	ItemType_Book                ItemType = "book"
	ItemType_BookSection         ItemType = "bookSection"
	ItemType_Case                ItemType = "case"
	ItemType_ComputerProgram     ItemType = "computerProgram"
	ItemType_ConferencePaper     ItemType = "conferencePaper"
	ItemType_DictionaryEntry     ItemType = "dictionaryEntry"
	ItemType_Document            ItemType = "document"
	ItemType_Email               ItemType = "email"
	ItemType_EncyclopediaArticle ItemType = "encyclopediaArticle"
	ItemType_Film                ItemType = "film"
	ItemType_ForumPost           ItemType = "forumPost"
	ItemType_Hearing             ItemType = "hearing"
	ItemType_InstantMessage      ItemType = "instantMessage"
	ItemType_Interview           ItemType = "interview"
	ItemType_JournalArticle      ItemType = "journalArticle"
	ItemType_Letter              ItemType = "letter"
	ItemType_MagazineArticle     ItemType = "magazineArticle"
	ItemType_Manuscript          ItemType = "manuscript"
	ItemType_Map                 ItemType = "map"
	ItemType_NewspaperArticle    ItemType = "newspaperArticle"
	ItemType_Note                ItemType = "note"
	ItemType_Patent              ItemType = "patent"
	ItemType_Podcast             ItemType = "podcast"
	ItemType_Presentation        ItemType = "presentation"
	ItemType_RadioBroadcast      ItemType = "radioBroadcast"
	ItemType_Report              ItemType = "report"
	ItemType_Statute             ItemType = "statute"
	ItemType_TvBroadcast         ItemType = "tvBroadcast"
	ItemType_Thesis              ItemType = "thesis"
	ItemType_VideoRecording      ItemType = "videoRecording"
	ItemType_Webpage             ItemType = "webpage"
	ItemType_Attachment          ItemType = "attachment"
)

// prototypes is the closed set of variants. Registration order is the order
// reported by ItemTypes.
var prototypes = []Content{
	&Artwork{},
	&AudioRecording{},
	&Bill{},
	&BlogPost{},
	&Book{},
	&BookSection{},
	&Case{},
	&ComputerProgram{},
	&ConferencePaper{},
	&DictionaryEntry{},
	&Document{},
	&Email{},
	&EncyclopediaArticle{},
	&Film{},
	&ForumPost{},
	&Hearing{},
	&InstantMessage{},
	&Interview{},
	&JournalArticle{},
	&Letter{},
	&MagazineArticle{},
	&Manuscript{},
	&Map{},
	&NewspaperArticle{},
	&Note{},
	&Patent{},
	&Podcast{},
	&Presentation{},
	&RadioBroadcast{},
	&Report{},
	&Statute{},
	&TvBroadcast{},
	&Thesis{},
	&VideoRecording{},
	&Webpage{},
	&Attachment{},
}

func (t ItemType) String() string {
	return string(t)
}

// DisplayName returns the label of the item type for the given locale.
func (t ItemType) DisplayName(locale string) string {
	return DisplayName(t, locale)
}
