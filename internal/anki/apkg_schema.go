package anki

// schema creates an empty Anki 2.1 collection (schema version 11)
var schema = []string{
	`CREATE TABLE col (id integer PRIMARY KEY, crt integer NOT NULL, mod integer NOT NULL,
		scm integer NOT NULL, ver integer NOT NULL, dty integer NOT NULL, usn integer NOT NULL,
		ls integer NOT NULL, conf text NOT NULL, models text NOT NULL, decks text NOT NULL,
		dconf text NOT NULL, tags text NOT NULL)`,
	`CREATE TABLE notes (id integer PRIMARY KEY, guid text NOT NULL, mid integer NOT NULL,
		mod integer NOT NULL, usn integer NOT NULL, tags text NOT NULL, flds text NOT NULL,
		sfld text NOT NULL, csum integer NOT NULL, flags integer NOT NULL, data text NOT NULL)`,
	`CREATE TABLE cards (id integer PRIMARY KEY, nid integer NOT NULL, did integer NOT NULL,
		ord integer NOT NULL, mod integer NOT NULL, usn integer NOT NULL, type integer NOT NULL,
		queue integer NOT NULL, due integer NOT NULL, ivl integer NOT NULL, factor integer NOT NULL,
		reps integer NOT NULL, lapses integer NOT NULL, left integer NOT NULL, odue integer NOT NULL,
		odid integer NOT NULL, flags integer NOT NULL, data text NOT NULL)`,
	`CREATE TABLE revlog (id integer PRIMARY KEY, cid integer NOT NULL, usn integer NOT NULL,
		ease integer NOT NULL, ivl integer NOT NULL, lastIvl integer NOT NULL,
		factor integer NOT NULL, time integer NOT NULL, type integer NOT NULL)`,
	`CREATE TABLE graves (usn integer NOT NULL, oid integer NOT NULL, type integer NOT NULL)`,
	`CREATE INDEX ix_notes_usn ON notes (usn)`,
	`CREATE INDEX ix_notes_csum ON notes (csum)`,
	`CREATE INDEX ix_cards_usn ON cards (usn)`,
	`CREATE INDEX ix_cards_nid ON cards (nid)`,
	`CREATE INDEX ix_cards_sched ON cards (did, queue, due)`,
	`CREATE INDEX ix_revlog_usn ON revlog (usn)`,
	`CREATE INDEX ix_revlog_cid ON revlog (cid)`,
}

type colConf struct {
	NextPos       int     `json:"nextPos"`
	EstTimes      bool    `json:"estTimes"`
	ActiveDecks   []int64 `json:"activeDecks"`
	SortType      string  `json:"sortType"`
	SortBackwards bool    `json:"sortBackwards"`
	AddToCur      bool    `json:"addToCur"`
	CurDeck       int64   `json:"curDeck"`
	NewSpread     int     `json:"newSpread"`
	DueCounts     bool    `json:"dueCounts"`
	CollapseTime  int     `json:"collapseTime"`
	TimeLim       int     `json:"timeLim"`
	SchedVer      int     `json:"schedVer"`
	CurModel      int64   `json:"curModel"`
	DayLearnFirst bool    `json:"dayLearnFirst"`
}

func collectionConfig(modelID int64) colConf {
	return colConf{
		NextPos:      1,
		EstTimes:     true,
		ActiveDecks:  []int64{1},
		SortType:     "noteFld",
		AddToCur:     true,
		CurDeck:      1,
		DueCounts:    true,
		CollapseTime: 1200,
		SchedVer:     1,
		CurModel:     modelID,
	}
}

type deckJSON struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Mod              int64  `json:"mod"`
	Desc             string `json:"desc"`
	Collapsed        bool   `json:"collapsed"`
	BrowserCollapsed bool   `json:"browserCollapsed"`
	Dyn              int    `json:"dyn"`
	Conf             int64  `json:"conf"`
	USN              int    `json:"usn"`
	NewToday         [2]int `json:"newToday"`
	RevToday         [2]int `json:"revToday"`
	LrnToday         [2]int `json:"lrnToday"`
	TimeToday        [2]int `json:"timeToday"`
	ExtendNew        int    `json:"extendNew"`
	ExtendRev        int    `json:"extendRev"`
}

func deck(id int64, name, desc string, mod int64) deckJSON {
	return deckJSON{
		ID:        id,
		Name:      name,
		Mod:       mod,
		Desc:      desc,
		Conf:      1,
		ExtendNew: 10,
		ExtendRev: 50,
	}
}

type newCardOptions struct {
	Delays        []int `json:"delays"`
	Ints          []int `json:"ints"`
	InitialFactor int   `json:"initialFactor"`
	PerDay        int   `json:"perDay"`
	Order         int   `json:"order"`
	Bury          bool  `json:"bury"`
	Separate      bool  `json:"separate"`
}

type lapseOptions struct {
	Delays      []int   `json:"delays"`
	Mult        float64 `json:"mult"`
	MinInt      int     `json:"minInt"`
	LeechFails  int     `json:"leechFails"`
	LeechAction int     `json:"leechAction"`
}

type reviewOptions struct {
	PerDay   int     `json:"perDay"`
	Ease4    float64 `json:"ease4"`
	Fuzz     float64 `json:"fuzz"`
	MaxIvl   int     `json:"maxIvl"`
	IvlFct   float64 `json:"ivlFct"`
	Bury     bool    `json:"bury"`
	MinSpace int     `json:"minSpace"`
}

type deckConf struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Dyn      int            `json:"dyn"`
	New      newCardOptions `json:"new"`
	Lapse    lapseOptions   `json:"lapse"`
	Rev      reviewOptions  `json:"rev"`
	Timer    int            `json:"timer"`
	MaxTaken int            `json:"maxTaken"`
	USN      int            `json:"usn"`
	Mod      int64          `json:"mod"`
	Autoplay bool           `json:"autoplay"`
	Replayq  bool           `json:"replayq"`
}

// deckOptions are the default study options. Spelling cards are short, so
// more new cards are shown per day than Anki's default.
func deckOptions(mod int64) deckConf {
	return deckConf{
		ID:   1,
		Name: "Default",
		New: newCardOptions{
			Delays:        []int{1, 10},
			Ints:          []int{1, 4, 7},
			InitialFactor: 2500,
			PerDay:        30,
			Order:         1,
			Bury:          true,
			Separate:      true,
		},
		Lapse: lapseOptions{
			Delays:     []int{10},
			MinInt:     1,
			LeechFails: 8,
		},
		Rev: reviewOptions{
			PerDay:   100,
			Ease4:    1.3,
			Fuzz:     0.05,
			MaxIvl:   36500,
			IvlFct:   1,
			Bury:     true,
			MinSpace: 1,
		},
		MaxTaken: 60,
		Mod:      mod,
		Autoplay: true,
		Replayq:  true,
	}
}

type noteField struct {
	Name   string   `json:"name"`
	Ord    int      `json:"ord"`
	Sticky bool     `json:"sticky"`
	RTL    bool     `json:"rtl"`
	Font   string   `json:"font"`
	Size   int      `json:"size"`
	Media  []string `json:"media"`
}

type cardTemplate struct {
	Name  string `json:"name"`
	Ord   int    `json:"ord"`
	Qfmt  string `json:"qfmt"`
	Afmt  string `json:"afmt"`
	Did   *int64 `json:"did"`
	Bqfmt string `json:"bqfmt"`
	Bafmt string `json:"bafmt"`
}

type model struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Type      int             `json:"type"`
	Mod       int64           `json:"mod"`
	USN       int             `json:"usn"`
	Sortf     int             `json:"sortf"`
	Did       int64           `json:"did"`
	Req       [][]interface{} `json:"req"`
	Vers      []int           `json:"vers"`
	Tags      []string        `json:"tags"`
	LatexPre  string          `json:"latexPre"`
	LatexPost string          `json:"latexPost"`
	Flds      []noteField     `json:"flds"`
	Tmpls     []cardTemplate  `json:"tmpls"`
	CSS       string          `json:"css"`
}

// fieldNames are the note fields in the order they are stored in flds
var fieldNames = []string{"Word", "Definition", "Audio", "Notes"}

// noteType describes the spelling note: the front plays the definition and
// asks for the word, the back reveals it
func noteType(modelID, deckID, mod int64) model {
	fields := make([]noteField, len(fieldNames))
	for i, name := range fieldNames {
		fields[i] = noteField{Name: name, Ord: i, Font: "Arial", Size: 20, Media: []string{}}
	}

	return model{
		ID:    modelID,
		Name:  "Spelling (spellbee)",
		Mod:   mod,
		USN:   -1,
		Did:   deckID,
		Req:   [][]interface{}{{0, "any", []int{1, 2}}},
		Vers:  []int{},
		Tags:  []string{},
		Flds:  fields,
		Tmpls: []cardTemplate{{Name: "Spell", Qfmt: frontTemplate, Afmt: backTemplate}},
		CSS:   cardCSS,

		LatexPre:  "\\documentclass[12pt]{article}\n\\begin{document}",
		LatexPost: "\\end{document}",
	}
}

const frontTemplate = `<div class="front">
{{#Audio}}<div class="audio">{{Audio}}</div>{{/Audio}}
<div class="definition">{{Definition}}</div>
<div class="prompt">Spell the word</div>
{{type:Word}}
</div>`

const backTemplate = `{{FrontSide}}
<hr id=answer>
<div class="word">{{Word}}</div>
{{#Notes}}<div class="notes">{{Notes}}</div>{{/Notes}}`

const cardCSS = `.card { font-family: Georgia, serif; font-size: 22px; text-align: center; color: #222; background: #fffdf7; }
.definition { font-size: 19px; line-height: 1.5; margin: 18px 0; }
.prompt { color: #8a8a8a; margin: 8px 0; }
.word { font-size: 34px; font-weight: bold; letter-spacing: 2px; color: #1d3557; }
.notes { font-size: 15px; color: #8a8a8a; font-style: italic; }
input#typeans { font-size: 24px; text-align: center; }`
