package parsing

// section is a state of the segmentation state machine.
type section int

const (
	sectionNone section = iota
	sectionSummary
	sectionEducation
	sectionExperience
	sectionProjects
	sectionSkills
	// sectionIgnored covers recognized headers whose content is not modeled
	// (awards, certifications, ...). Lines there are discarded.
	sectionIgnored
)

func (s section) String() string {
	switch s {
	case sectionSummary:
		return "summary"
	case sectionEducation:
		return "education"
	case sectionExperience:
		return "experience"
	case sectionProjects:
		return "projects"
	case sectionSkills:
		return "skills"
	case sectionIgnored:
		return "ignored"
	default:
		return "none"
	}
}

// headerVocabulary maps a normalized header line to its section.
var headerVocabulary = map[string]section{
	"summary":                 sectionSummary,
	"professional summary":    sectionSummary,
	"career summary":          sectionSummary,
	"profile":                 sectionSummary,
	"professional profile":    sectionSummary,
	"objective":               sectionSummary,
	"career objective":        sectionSummary,
	"about me":                sectionSummary,
	"education":               sectionEducation,
	"academic":                sectionEducation,
	"academics":               sectionEducation,
	"academic background":     sectionEducation,
	"academic history":        sectionEducation,
	"experience":              sectionExperience,
	"work":                    sectionExperience,
	"work experience":         sectionExperience,
	"work history":            sectionExperience,
	"professional experience": sectionExperience,
	"relevant experience":     sectionExperience,
	"employment":              sectionExperience,
	"employment history":      sectionExperience,
	"projects":                sectionProjects,
	"personal projects":       sectionProjects,
	"selected projects":       sectionProjects,
	"side projects":           sectionProjects,
	"portfolio":               sectionProjects,
	"skills":                  sectionSkills,
	"technical skills":        sectionSkills,
	"core skills":             sectionSkills,
	"key skills":              sectionSkills,
	"technologies":            sectionSkills,
	"tech stack":              sectionSkills,
	"certifications":          sectionIgnored,
	"certificates":            sectionIgnored,
	"awards":                  sectionIgnored,
	"honors":                  sectionIgnored,
	"achievements":            sectionIgnored,
	"publications":            sectionIgnored,
	"interests":               sectionIgnored,
	"hobbies":                 sectionIgnored,
	"volunteer":               sectionIgnored,
	"volunteering":            sectionIgnored,
	"volunteer experience":    sectionIgnored,
	"activities":              sectionIgnored,
	"extracurriculars":        sectionIgnored,
	"leadership":              sectionIgnored,
	"references":              sectionIgnored,
	"coursework":              sectionIgnored,
	"relevant coursework":     sectionIgnored,
}

// roleKeywords identify the role half of an experience header line.
var roleKeywords = map[string]bool{
	"engineer": true, "developer": true, "programmer": true, "architect": true,
	"manager": true, "lead": true, "director": true, "head": true,
	"intern": true, "internship": true, "analyst": true, "designer": true,
	"scientist": true, "researcher": true, "consultant": true, "specialist": true,
	"administrator": true, "associate": true, "assistant": true, "coordinator": true,
	"officer": true, "founder": true, "co-founder": true, "cto": true, "ceo": true,
	"vp": true, "president": true, "technician": true, "teacher": true, "tutor": true,
	"sre": true, "devops": true, "contractor": true, "freelancer": true, "fellow": true,
}

// degreeKeywords identify the degree half of an education line (lower-cased tokens).
var degreeKeywords = map[string]bool{
	"b.s.": true, "b.s": true, "bs": true, "b.sc": true, "b.sc.": true, "bsc": true,
	"b.a.": true, "b.a": true, "ba": true, "b.e.": true, "b.tech": true, "btech": true,
	"m.s.": true, "m.s": true, "ms": true, "m.sc": true, "m.sc.": true, "msc": true,
	"m.a.": true, "m.a": true, "m.eng": true, "m.tech": true, "mba": true,
	"ph.d": true, "ph.d.": true, "phd": true, "doctorate": true,
	"bachelor": true, "bachelors": true, "bachelor's": true,
	"master": true, "masters": true, "master's": true,
	"associate": true, "associates": true, "diploma": true, "degree": true,
	"certificate": true,
}

// fieldKeywords identify a field of study written without a degree ("Computer Science").
var fieldKeywords = map[string]bool{
	"science": true, "sciences": true, "engineering": true, "mathematics": true, "math": true,
	"physics": true, "chemistry": true, "biology": true, "economics": true, "business": true,
	"finance": true, "accounting": true, "statistics": true, "psychology": true,
	"informatics": true, "linguistics": true, "philosophy": true, "humanities": true,
}

// schoolKeywords identify the institution half of an education line.
var schoolKeywords = map[string]bool{
	"university": true, "college": true, "institute": true, "school": true,
	"academy": true, "polytechnic": true,
}

// documentTitles are leading lines that title the document rather than name its owner.
var documentTitles = []string{"curriculum vitae", "resume", "résumé", "cv"}

// skillVerbStoplist marks short lines as sentences rather than skill names.
var skillVerbStoplist = map[string]bool{
	"is": true, "are": true, "was": true, "were": true, "am": true,
	"have": true, "has": true, "had": true,
	"developed": true, "built": true, "led": true, "managed": true,
	"created": true, "designed": true, "implemented": true, "improved": true,
	"worked": true, "used": true, "using": true, "maintained": true,
	"increased": true, "reduced": true, "delivered": true, "responsible": true,
}

// bulletPrefixes are the glyphs that open a bullet line.
var bulletPrefixes = []string{"•", "·", "▪", "◦", "‣", "●", "- ", "* ", "– ", "— ", "> "}
