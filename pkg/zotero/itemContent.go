package zotero

// Field sets follow the service's /itemTypeFields schema. The trailing comment
// is the en-US field label.

type Artwork struct {
	Base
	Authored
	Described
	Cataloged
	Title         string  `zotero:"title,required"` // Title
	ArtworkMedium *string `zotero:"artworkMedium"`  // Medium
	ArtworkSize   *string `zotero:"artworkSize"`    // Artwork Size
	Date          *Date   `zotero:"date"`           // Date
	Language      *string `zotero:"language"`       // Language
}

func (*Artwork) ItemType() ItemType { return ItemType_Artwork }

type AudioRecording struct {
	Base
	Authored
	Described
	Cataloged
	Title                string  `zotero:"title,required"`       // Title
	AudioRecordingFormat *string `zotero:"audioRecordingFormat"` // Format
	SeriesTitle          *string `zotero:"seriesTitle"`          // Series Title
	Volume               *string `zotero:"volume"`               // Volume
	NumberOfVolumes      *uint16 `zotero:"numberOfVolumes"`      // # of Volumes
	Place                *string `zotero:"place"`                // Place
	Label                *string `zotero:"label"`                // Label
	Date                 *Date   `zotero:"date"`                 // Date
	RunningTime          *string `zotero:"runningTime"`          // Running Time
	Language             *string `zotero:"language"`             // Language
	ISBN                 *ISBN   `zotero:"ISBN"`                 // ISBN
}

func (*AudioRecording) ItemType() ItemType { return ItemType_AudioRecording }

type Bill struct {
	Base
	Authored
	Described
	Title           string  `zotero:"title,required"`  // Title
	BillNumber      *string `zotero:"billNumber"`      // Bill Number
	Code            *string `zotero:"code"`            // Code
	CodeVolume      *string `zotero:"codeVolume"`      // Code Volume
	Section         *string `zotero:"section"`         // Section
	CodePages       *string `zotero:"codePages"`       // Code Pages
	LegislativeBody *string `zotero:"legislativeBody"` // Legislative Body
	Session         *string `zotero:"session"`         // Session
	History         *string `zotero:"history"`         // History
	Date            *Date   `zotero:"date"`            // Date
	Language        *string `zotero:"language"`        // Language
}

func (*Bill) ItemType() ItemType { return ItemType_Bill }

type BlogPost struct {
	Base
	Authored
	Described
	Title       string  `zotero:"title,required"` // Title
	BlogTitle   *string `zotero:"blogTitle"`      // Blog Title
	WebsiteType *string `zotero:"websiteType"`    // Website Type
	Date        *Date   `zotero:"date"`           // Date
	Language    *string `zotero:"language"`       // Language
}

func (*BlogPost) ItemType() ItemType { return ItemType_BlogPost }

type Book struct {
	Base
	Authored
	Described
	Cataloged
	Title           string  `zotero:"title,required"`  // Title
	Series          *string `zotero:"series"`          // Series
	SeriesNumber    *string `zotero:"seriesNumber"`    // Series Number
	Volume          *string `zotero:"volume"`          // Volume
	NumberOfVolumes *uint16 `zotero:"numberOfVolumes"` // # of Volumes
	Edition         *string `zotero:"edition"`         // Edition
	Place           *string `zotero:"place"`           // Place
	Publisher       *string `zotero:"publisher"`       // Publisher
	Date            *Date   `zotero:"date"`            // Date
	NumPages        *uint16 `zotero:"numPages"`        // # of Pages
	Language        *string `zotero:"language"`        // Language
	ISBN            *ISBN   `zotero:"ISBN"`            // ISBN
}

func (*Book) ItemType() ItemType { return ItemType_Book }

type BookSection struct {
	Base
	Authored
	Described
	Cataloged
	Title           string  `zotero:"title,required"`     // Title
	BookTitle       string  `zotero:"bookTitle,required"` // Book Title
	Series          *string `zotero:"series"`             // Series
	SeriesNumber    *string `zotero:"seriesNumber"`       // Series Number
	Volume          *string `zotero:"volume"`             // Volume
	NumberOfVolumes *uint16 `zotero:"numberOfVolumes"`    // # of Volumes
	Edition         *string `zotero:"edition"`            // Edition
	Place           *string `zotero:"place"`              // Place
	Publisher       *string `zotero:"publisher"`          // Publisher
	Date            *Date   `zotero:"date"`               // Date
	Pages           *string `zotero:"pages"`              // Pages
	Language        *string `zotero:"language"`           // Language
	ISBN            *ISBN   `zotero:"ISBN"`               // ISBN
}

func (*BookSection) ItemType() ItemType { return ItemType_BookSection }

type Case struct {
	Base
	Authored
	Described
	CaseName       string  `zotero:"caseName,required"` // Case Name
	Reporter       *string `zotero:"reporter"`          // Reporter
	ReporterVolume *string `zotero:"reporterVolume"`    // Reporter Volume
	Court          *string `zotero:"court"`             // Court
	DocketNumber   *string `zotero:"docketNumber"`      // Docket Number
	FirstPage      *string `zotero:"firstPage"`         // First Page
	History        *string `zotero:"history"`           // History
	DateDecided    *Date   `zotero:"dateDecided"`       // Date Decided
	Language       *string `zotero:"language"`          // Language
}

func (*Case) ItemType() ItemType { return ItemType_Case }

type ComputerProgram struct {
	Base
	Authored
	Described
	Cataloged
	Title               string  `zotero:"title,required"`      // Title
	SeriesTitle         *string `zotero:"seriesTitle"`         // Series Title
	VersionNumber       *string `zotero:"versionNumber"`       // Version
	Date                *Date   `zotero:"date"`                // Date
	System              *string `zotero:"system"`              // System
	Place               *string `zotero:"place"`               // Place
	Company             *string `zotero:"company"`             // Company
	ProgrammingLanguage *string `zotero:"programmingLanguage"` // Language
	ISBN                *ISBN   `zotero:"ISBN"`                // ISBN
}

func (*ComputerProgram) ItemType() ItemType { return ItemType_ComputerProgram }

type ConferencePaper struct {
	Base
	Authored
	Described
	Cataloged
	Title            string  `zotero:"title,required"`   // Title
	Date             *Date   `zotero:"date"`             // Date
	ProceedingsTitle *string `zotero:"proceedingsTitle"` // Proceedings Title
	ConferenceName   *string `zotero:"conferenceName"`   // Conference Name
	Place            *string `zotero:"place"`            // Place
	Publisher        *string `zotero:"publisher"`        // Publisher
	Volume           *string `zotero:"volume"`           // Volume
	Pages            *string `zotero:"pages"`            // Pages
	Series           *string `zotero:"series"`           // Series
	Language         *string `zotero:"language"`         // Language
	DOI              *string `zotero:"DOI"`              // DOI
	ISBN             *ISBN   `zotero:"ISBN"`             // ISBN
}

func (*ConferencePaper) ItemType() ItemType { return ItemType_ConferencePaper }

type DictionaryEntry struct {
	Base
	Authored
	Described
	Cataloged
	Title           string  `zotero:"title,required"`  // Title
	DictionaryTitle *string `zotero:"dictionaryTitle"` // Dictionary Title
	Series          *string `zotero:"series"`          // Series
	SeriesNumber    *string `zotero:"seriesNumber"`    // Series Number
	Volume          *string `zotero:"volume"`          // Volume
	NumberOfVolumes *uint16 `zotero:"numberOfVolumes"` // # of Volumes
	Edition         *string `zotero:"edition"`         // Edition
	Place           *string `zotero:"place"`           // Place
	Publisher       *string `zotero:"publisher"`       // Publisher
	Date            *Date   `zotero:"date"`            // Date
	Pages           *string `zotero:"pages"`           // Pages
	Language        *string `zotero:"language"`        // Language
	ISBN            *ISBN   `zotero:"ISBN"`            // ISBN
}

func (*DictionaryEntry) ItemType() ItemType { return ItemType_DictionaryEntry }

type Document struct {
	Base
	Authored
	Described
	Cataloged
	Title     string  `zotero:"title,required"` // Title
	Publisher *string `zotero:"publisher"`      // Publisher
	Date      *Date   `zotero:"date"`           // Date
	Language  *string `zotero:"language"`       // Language
}

func (*Document) ItemType() ItemType { return ItemType_Document }

type Email struct {
	Base
	Authored
	Described
	Subject  string  `zotero:"subject,required"` // Subject
	Date     *Date   `zotero:"date"`             // Date
	Language *string `zotero:"language"`         // Language
}

func (*Email) ItemType() ItemType { return ItemType_Email }

type EncyclopediaArticle struct {
	Base
	Authored
	Described
	Cataloged
	Title             string  `zotero:"title,required"`    // Title
	EncyclopediaTitle *string `zotero:"encyclopediaTitle"` // Encyclopedia Title
	Series            *string `zotero:"series"`            // Series
	SeriesNumber      *string `zotero:"seriesNumber"`      // Series Number
	Volume            *string `zotero:"volume"`            // Volume
	NumberOfVolumes   *uint16 `zotero:"numberOfVolumes"`   // # of Volumes
	Edition           *string `zotero:"edition"`           // Edition
	Place             *string `zotero:"place"`             // Place
	Publisher         *string `zotero:"publisher"`         // Publisher
	Date              *Date   `zotero:"date"`              // Date
	Pages             *string `zotero:"pages"`             // Pages
	ISBN              *ISBN   `zotero:"ISBN"`              // ISBN
	Language          *string `zotero:"language"`          // Language
}

func (*EncyclopediaArticle) ItemType() ItemType { return ItemType_EncyclopediaArticle }

type Film struct {
	Base
	Authored
	Described
	Cataloged
	Title                string  `zotero:"title,required"`       // Title
	Distributor          *string `zotero:"distributor"`          // Distributor
	Date                 *Date   `zotero:"date"`                 // Date
	Genre                *string `zotero:"genre"`                // Genre
	VideoRecordingFormat *string `zotero:"videoRecordingFormat"` // Format
	RunningTime          *string `zotero:"runningTime"`          // Running Time
	Language             *string `zotero:"language"`             // Language
}

func (*Film) ItemType() ItemType { return ItemType_Film }

type ForumPost struct {
	Base
	Authored
	Described
	Title      string  `zotero:"title,required"` // Title
	ForumTitle *string `zotero:"forumTitle"`     // Forum/Listserv Title
	PostType   *string `zotero:"postType"`       // Post Type
	Date       *Date   `zotero:"date"`           // Date
	Language   *string `zotero:"language"`       // Language
}

func (*ForumPost) ItemType() ItemType { return ItemType_ForumPost }

type Hearing struct {
	Base
	Authored
	Described
	Title           string  `zotero:"title,required"`  // Title
	Committee       *string `zotero:"committee"`       // Committee
	Place           *string `zotero:"place"`           // Place
	Publisher       *string `zotero:"publisher"`       // Publisher
	NumberOfVolumes *uint16 `zotero:"numberOfVolumes"` // # of Volumes
	DocumentNumber  *string `zotero:"documentNumber"`  // Document Number
	Pages           *string `zotero:"pages"`           // Pages
	LegislativeBody *string `zotero:"legislativeBody"` // Legislative Body
	Session         *string `zotero:"session"`         // Session
	History         *string `zotero:"history"`         // History
	Date            *Date   `zotero:"date"`            // Date
	Language        *string `zotero:"language"`        // Language
}

func (*Hearing) ItemType() ItemType { return ItemType_Hearing }

type InstantMessage struct {
	Base
	Authored
	Described
	Title    string  `zotero:"title,required"` // Title
	Date     *Date   `zotero:"date"`           // Date
	Language *string `zotero:"language"`       // Language
}

func (*InstantMessage) ItemType() ItemType { return ItemType_InstantMessage }

type Interview struct {
	Base
	Authored
	Described
	Cataloged
	Title           string  `zotero:"title,required"`  // Title
	Date            *Date   `zotero:"date"`            // Date
	InterviewMedium *string `zotero:"interviewMedium"` // Medium
	Language        *string `zotero:"language"`        // Language
}

func (*Interview) ItemType() ItemType { return ItemType_Interview }

type JournalArticle struct {
	Base
	Authored
	Described
	Cataloged
	Title               string  `zotero:"title,required"`      // Title
	PublicationTitle    *string `zotero:"publicationTitle"`    // Publication
	Volume              *string `zotero:"volume"`              // Volume
	Issue               *string `zotero:"issue"`               // Issue
	Pages               *string `zotero:"pages"`               // Pages
	Date                *Date   `zotero:"date"`                // Date
	Series              *string `zotero:"series"`              // Series
	SeriesTitle         *string `zotero:"seriesTitle"`         // Series Title
	SeriesText          *string `zotero:"seriesText"`          // Series Text
	JournalAbbreviation *string `zotero:"journalAbbreviation"` // Journal Abbr
	Language            *string `zotero:"language"`            // Language
	DOI                 *string `zotero:"DOI"`                 // DOI
	ISSN                *string `zotero:"ISSN"`                // ISSN
}

func (*JournalArticle) ItemType() ItemType { return ItemType_JournalArticle }

type Letter struct {
	Base
	Authored
	Described
	Cataloged
	Title      string  `zotero:"title,required"` // Title
	LetterType *string `zotero:"letterType"`     // Type
	Date       *Date   `zotero:"date"`           // Date
	Language   *string `zotero:"language"`       // Language
}

func (*Letter) ItemType() ItemType { return ItemType_Letter }

type MagazineArticle struct {
	Base
	Authored
	Described
	Cataloged
	Title            string  `zotero:"title,required"`   // Title
	PublicationTitle *string `zotero:"publicationTitle"` // Publication
	Volume           *string `zotero:"volume"`           // Volume
	Issue            *string `zotero:"issue"`            // Issue
	Date             *Date   `zotero:"date"`             // Date
	Pages            *string `zotero:"pages"`            // Pages
	Language         *string `zotero:"language"`         // Language
	ISSN             *string `zotero:"ISSN"`             // ISSN
}

func (*MagazineArticle) ItemType() ItemType { return ItemType_MagazineArticle }

type Manuscript struct {
	Base
	Authored
	Described
	Cataloged
	Title          string  `zotero:"title,required"` // Title
	ManuscriptType *string `zotero:"manuscriptType"` // Type
	Place          *string `zotero:"place"`          // Place
	Date           *Date   `zotero:"date"`           // Date
	NumPages       *uint16 `zotero:"numPages"`       // # of Pages
	Language       *string `zotero:"language"`       // Language
}

func (*Manuscript) ItemType() ItemType { return ItemType_Manuscript }

type Map struct {
	Base
	Authored
	Described
	Cataloged
	Title       string  `zotero:"title,required"` // Title
	MapType     *string `zotero:"mapType"`        // Type
	Scale       *string `zotero:"scale"`          // Scale
	SeriesTitle *string `zotero:"seriesTitle"`    // Series Title
	Edition     *string `zotero:"edition"`        // Edition
	Place       *string `zotero:"place"`          // Place
	Publisher   *string `zotero:"publisher"`      // Publisher
	Date        *Date   `zotero:"date"`           // Date
	Language    *string `zotero:"language"`       // Language
	ISBN        *ISBN   `zotero:"ISBN"`           // ISBN
}

func (*Map) ItemType() ItemType { return ItemType_Map }

type NewspaperArticle struct {
	Base
	Authored
	Described
	Cataloged
	Title            string  `zotero:"title,required"`   // Title
	PublicationTitle *string `zotero:"publicationTitle"` // Publication
	Place            *string `zotero:"place"`            // Place
	Edition          *string `zotero:"edition"`          // Edition
	Date             *Date   `zotero:"date"`             // Date
	Section          *string `zotero:"section"`          // Section
	Pages            *string `zotero:"pages"`            // Pages
	Language         *string `zotero:"language"`         // Language
	ISSN             *string `zotero:"ISSN"`             // ISSN
}

func (*NewspaperArticle) ItemType() ItemType { return ItemType_NewspaperArticle }

type Patent struct {
	Base
	Authored
	Described
	Title             string  `zotero:"title,required"`    // Title
	Place             *string `zotero:"place"`             // Place
	Country           *string `zotero:"country"`           // Country
	Assignee          *string `zotero:"assignee"`          // Assignee
	IssuingAuthority  *string `zotero:"issuingAuthority"`  // Issuing Authority
	PatentNumber      *string `zotero:"patentNumber"`      // Patent Number
	FilingDate        *Date   `zotero:"filingDate"`        // Filing Date
	Pages             *string `zotero:"pages"`             // Pages
	ApplicationNumber *string `zotero:"applicationNumber"` // Application Number
	PriorityNumbers   *string `zotero:"priorityNumbers"`   // Priority Numbers
	IssueDate         *Date   `zotero:"issueDate"`         // Issue Date
	References        *string `zotero:"references"`        // References
	LegalStatus       *string `zotero:"legalStatus"`       // Legal Status
	Language          *string `zotero:"language"`          // Language
}

func (*Patent) ItemType() ItemType { return ItemType_Patent }

type Podcast struct {
	Base
	Authored
	Described
	Title         string  `zotero:"title,required"` // Title
	SeriesTitle   *string `zotero:"seriesTitle"`    // Series Title
	EpisodeNumber *string `zotero:"episodeNumber"`  // Episode Number
	AudioFileType *string `zotero:"audioFileType"`  // File Type
	RunningTime   *string `zotero:"runningTime"`    // Running Time
	Language      *string `zotero:"language"`       // Language
}

func (*Podcast) ItemType() ItemType { return ItemType_Podcast }

type Presentation struct {
	Base
	Authored
	Described
	Title            string  `zotero:"title,required"`   // Title
	PresentationType *string `zotero:"presentationType"` // Type
	Date             *Date   `zotero:"date"`             // Date
	Place            *string `zotero:"place"`            // Place
	MeetingName      *string `zotero:"meetingName"`      // Meeting Name
	Language         *string `zotero:"language"`         // Language
}

func (*Presentation) ItemType() ItemType { return ItemType_Presentation }

type RadioBroadcast struct {
	Base
	Authored
	Described
	Cataloged
	Title                string  `zotero:"title,required"`       // Title
	ProgramTitle         *string `zotero:"programTitle"`         // Program Title
	EpisodeNumber        *string `zotero:"episodeNumber"`        // Episode Number
	AudioRecordingFormat *string `zotero:"audioRecordingFormat"` // Format
	Place                *string `zotero:"place"`                // Place
	Network              *string `zotero:"network"`              // Network
	Date                 *Date   `zotero:"date"`                 // Date
	RunningTime          *string `zotero:"runningTime"`          // Running Time
	Language             *string `zotero:"language"`             // Language
}

func (*RadioBroadcast) ItemType() ItemType { return ItemType_RadioBroadcast }

type Report struct {
	Base
	Authored
	Described
	Cataloged
	Title        string  `zotero:"title,required"` // Title
	ReportNumber *string `zotero:"reportNumber"`   // Report Number
	ReportType   *string `zotero:"reportType"`     // Report Type
	SeriesTitle  *string `zotero:"seriesTitle"`    // Series Title
	Place        *string `zotero:"place"`          // Place
	Institution  *string `zotero:"institution"`    // Institution
	Date         *Date   `zotero:"date"`           // Date
	Pages        *string `zotero:"pages"`          // Pages
	Language     *string `zotero:"language"`       // Language
}

func (*Report) ItemType() ItemType { return ItemType_Report }

type Statute struct {
	Base
	Authored
	Described
	NameOfAct       string  `zotero:"nameOfAct,required"` // Name of Act
	Code            *string `zotero:"code"`               // Code
	CodeNumber      *string `zotero:"codeNumber"`         // Code Number
	PublicLawNumber *string `zotero:"publicLawNumber"`    // Public Law Number
	DateEnacted     *Date   `zotero:"dateEnacted"`        // Date Enacted
	Pages           *string `zotero:"pages"`              // Pages
	Section         *string `zotero:"section"`            // Section
	Session         *string `zotero:"session"`            // Session
	History         *string `zotero:"history"`            // History
	Language        *string `zotero:"language"`           // Language
}

func (*Statute) ItemType() ItemType { return ItemType_Statute }

type TvBroadcast struct {
	Base
	Authored
	Described
	Cataloged
	Title                string  `zotero:"title,required"`       // Title
	ProgramTitle         *string `zotero:"programTitle"`         // Program Title
	EpisodeNumber        *string `zotero:"episodeNumber"`        // Episode Number
	VideoRecordingFormat *string `zotero:"videoRecordingFormat"` // Format
	Place                *string `zotero:"place"`                // Place
	Network              *string `zotero:"network"`              // Network
	Date                 *Date   `zotero:"date"`                 // Date
	RunningTime          *string `zotero:"runningTime"`          // Running Time
	Language             *string `zotero:"language"`             // Language
}

func (*TvBroadcast) ItemType() ItemType { return ItemType_TvBroadcast }

type Thesis struct {
	Base
	Authored
	Described
	Cataloged
	Title      string  `zotero:"title,required"` // Title
	ThesisType *string `zotero:"thesisType"`     // Type
	University *string `zotero:"university"`     // University
	Place      *string `zotero:"place"`          // Place
	Date       *Date   `zotero:"date"`           // Date
	NumPages   *uint16 `zotero:"numPages"`       // # of Pages
	Language   *string `zotero:"language"`       // Language
}

func (*Thesis) ItemType() ItemType { return ItemType_Thesis }

type VideoRecording struct {
	Base
	Authored
	Described
	Cataloged
	Title                string  `zotero:"title,required"`       // Title
	VideoRecordingFormat *string `zotero:"videoRecordingFormat"` // Format
	SeriesTitle          *string `zotero:"seriesTitle"`          // Series Title
	Volume               *string `zotero:"volume"`               // Volume
	NumberOfVolumes      *uint16 `zotero:"numberOfVolumes"`      // # of Volumes
	Place                *string `zotero:"place"`                // Place
	Studio               *string `zotero:"studio"`               // Studio
	Date                 *Date   `zotero:"date"`                 // Date
	RunningTime          *string `zotero:"runningTime"`          // Running Time
	Language             *string `zotero:"language"`             // Language
	ISBN                 *ISBN   `zotero:"ISBN"`                 // ISBN
}

func (*VideoRecording) ItemType() ItemType { return ItemType_VideoRecording }

type Webpage struct {
	Base
	Authored
	Described
	Title        string  `zotero:"title,required"` // Title
	WebsiteTitle *string `zotero:"websiteTitle"`   // Website Title
	WebsiteType  *string `zotero:"websiteType"`    // Website Type
	Date         *Date   `zotero:"date"`           // Date
	Language     *string `zotero:"language"`       // Language
}

func (*Webpage) ItemType() ItemType { return ItemType_Webpage }
// Note is a standalone or child note. The note body is HTML.
type Note struct {
	Base
	Note string `zotero:"note,required"`
}

func (*Note) ItemType() ItemType { return ItemType_Note }

// Attachment is a file or link, usually the child of a regular item.
type Attachment struct {
	Base
	Title       *string `zotero:"title"`
	LinkMode    string  `zotero:"linkMode,required"`
	AccessDate  *Date   `zotero:"accessDate"`
	URL         *URL    `zotero:"url"`
	Note        *string `zotero:"note"`
	ContentType *string `zotero:"contentType"`
	Charset     *string `zotero:"charset"`
	Filename    *string `zotero:"filename"`
	MD5         *string `zotero:"md5"`
	MTime       *int64  `zotero:"mtime"`
}

func (*Attachment) ItemType() ItemType { return ItemType_Attachment }
