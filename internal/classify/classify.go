// Package classify assigns every desktop icon exactly one category using a
// fixed, priority-ordered rule cascade, and groups classified icons into the
// four layout buckets.
//
// Categories are not mutually exclusive by attribute (an executable can sit
// under Program Files and carry a game title), so the first matching rule
// wins and rule order is significant.
package classify

import (
	"strings"

	"github.com/mesh-intelligence/desksort/internal/taxonomy"
	"github.com/mesh-intelligence/desksort/pkg/types"
)

// Rule names reported by Explain, in evaluation order.
const (
	RuleFolder           = "folder"
	RuleSystemItem       = "system-item"
	RuleGameURI          = "game-uri"
	RuleGameLexicon      = "game-lexicon"
	RuleGameKeyword      = "game-keyword"
	RuleGameInstallPath  = "game-install-path"
	RuleGenericGameWord  = "generic-game-word"
	RuleKnownProgram     = "known-program"
	RuleInstalledProgram = "installed-program"
	RuleExtension        = "extension"
	RuleBareExecutable   = "bare-executable"
	RuleShortcutFallback = "shortcut-fallback"
	RuleInternetLink     = "internet-link"
	RuleOtherFile        = "other-file"
	RuleDefault          = "default"
)

// facts is everything the rules look at, derived once per record.
type facts struct {
	rec      types.IconRecord
	lex      types.Lexicon
	names    []string // folded resolved and display names, deduplicated
	display  string
	path     string // folded, "/"-separated target
	url      bool
	ext      string
	base     string
	shortcut bool // the desktop entry itself is a shortcut
	internet bool
}

func newFacts(rec types.IconRecord, lex types.Lexicon) *facts {
	f := &facts{
		rec:     rec,
		lex:     lex,
		display: types.Fold(rec.DisplayName),
		path:    taxonomy.NormalizePath(rec.TargetPath),
	}
	if resolved := types.Fold(rec.ResolvedName); resolved != "" {
		f.names = append(f.names, resolved)
	}
	if f.display != "" && (len(f.names) == 0 || f.names[0] != f.display) {
		f.names = append(f.names, f.display)
	}

	f.url = taxonomy.IsURL(f.path)
	f.shortcut = rec.OriginalKind == types.KindShortcut || rec.Kind == types.KindShortcut
	f.internet = rec.Kind == types.KindInternetShortcut || rec.OriginalKind == types.KindInternetShortcut

	if rec.Kind != types.KindFolder {
		f.ext = taxonomy.Extension(f.path)
		f.base = taxonomy.Base(f.path)
		// A plain file without a resolved target still carries its extension
		// in the display name. Shortcuts never do: "x.pdf.lnk" is not a PDF.
		if f.ext == "" && f.path == "" && !f.shortcut && !f.internet {
			f.ext = taxonomy.Extension(f.display)
			f.base = f.display
		}
	}
	return f
}

// executableTarget reports whether the record runs a program: either it is
// an executable, or it is a shortcut that resolved to one.
func (f *facts) executableTarget() bool {
	if f.rec.Kind == types.KindExecutable {
		return true
	}
	return f.shortcut && taxonomy.ExecutableExtensions[f.ext]
}

// lexiconMatch reports whether any name equals a lexicon title, or contains
// one longer than three runes.
func (f *facts) lexiconMatch(names ...string) bool {
	if f.lex.Len() == 0 {
		return false
	}
	for _, n := range names {
		if f.lex.Has(n) {
			return true
		}
	}
	for _, title := range f.lex.Titles() {
		if len([]rune(title)) <= 3 {
			continue
		}
		for _, n := range names {
			if strings.Contains(n, title) {
				return true
			}
		}
	}
	return false
}

func (f *facts) keywordMatch(names ...string) bool {
	for _, kw := range taxonomy.GameKeywords {
		for _, n := range names {
			if taxonomy.MatchesToken(n, kw) {
				return true
			}
		}
	}
	return false
}

type rule struct {
	name  string
	match func(f *facts) (types.Category, bool)
}

// cascade is evaluated top to bottom; the first rule that matches decides.
var cascade = []rule{
	{RuleFolder, matchFolder},
	{RuleSystemItem, matchSystemItem},
	{RuleGameURI, matchGameURI},
	{RuleGameLexicon, matchGameLexicon},
	{RuleGameKeyword, matchGameKeyword},
	{RuleGameInstallPath, matchGameInstallPath},
	{RuleGenericGameWord, matchGenericGameWord},
	{RuleKnownProgram, matchKnownProgram},
	{RuleInstalledProgram, matchInstalledProgram},
	{RuleExtension, matchExtension},
	{RuleBareExecutable, matchBareExecutable},
	{RuleShortcutFallback, matchShortcutFallback},
	{RuleInternetLink, matchInternetLink},
	{RuleOtherFile, matchOtherFile},
}

// Classify returns the category of rec. It never fails: records no rule
// recognizes are CategoryUnknown.
func Classify(rec types.IconRecord, lex types.Lexicon) types.Category {
	cat, _ := Explain(rec, lex)
	return cat
}

// Explain is Classify that also names the rule which decided.
func Explain(rec types.IconRecord, lex types.Lexicon) (types.Category, string) {
	f := newFacts(rec, lex)
	for _, r := range cascade {
		if cat, ok := r.match(f); ok {
			return cat, r.name
		}
	}
	return types.CategoryUnknown, RuleDefault
}

func matchFolder(f *facts) (types.Category, bool) {
	return types.CategoryFolders, f.rec.Kind == types.KindFolder
}

func matchSystemItem(f *facts) (types.Category, bool) {
	return types.CategorySystemItems, f.rec.OriginalKind == types.KindUnknown && taxonomy.SystemNames[f.display]
}

func matchGameURI(f *facts) (types.Category, bool) {
	return types.CategoryGames, f.internet && taxonomy.HasAnyPrefix(f.path, taxonomy.GameLaunchSchemes)
}

func matchGameLexicon(f *facts) (types.Category, bool) {
	return types.CategoryGames, f.lexiconMatch(f.names...)
}

func matchGameKeyword(f *facts) (types.Category, bool) {
	return types.CategoryGames, f.keywordMatch(f.names...)
}

func matchGameInstallPath(f *facts) (types.Category, bool) {
	if !f.executableTarget() || !taxonomy.ContainsAny(f.path, taxonomy.GamePathIndicators) {
		return "", false
	}
	// Launchers install next to the games they manage.
	if _, known := taxonomy.ProgramExecutables[f.base]; known {
		return "", false
	}
	return types.CategoryGames, true
}

func matchGenericGameWord(f *facts) (types.Category, bool) {
	for _, n := range f.names {
		if taxonomy.ContainsAny(n, taxonomy.GameCounterKeywords) {
			return "", false
		}
	}
	exec := f.executableTarget()
	for _, word := range taxonomy.GenericGameWords {
		for _, n := range f.names {
			if !taxonomy.MatchesToken(n, word) {
				continue
			}
			// Utilities named "...game..." are common; an executable only
			// counts when its install path agrees.
			if exec && !strings.Contains(f.path, word) {
				continue
			}
			return types.CategoryGames, true
		}
	}
	return "", false
}

func matchKnownProgram(f *facts) (types.Category, bool) {
	// Links are never programs, and a document that mentions a program
	// ("discord notes.txt") is content.
	if _, content := taxonomy.ContentExtensions[f.ext]; content || f.internet {
		return "", false
	}
	if cat, ok := taxonomy.ProgramExecutables[f.base]; ok {
		return cat, true
	}
	candidates := append([]string{}, f.names...)
	if f.path != "" && !f.url {
		candidates = append(candidates, f.path)
	}
	for _, c := range candidates {
		if taxonomy.ContainsAny(c, taxonomy.ProgramKeywords) {
			return types.CategoryPrograms, true
		}
	}
	return "", false
}

func matchInstalledProgram(f *facts) (types.Category, bool) {
	if !f.executableTarget() || !taxonomy.ContainsAny(f.path, taxonomy.InstalledProgramDirs) {
		return "", false
	}
	// Games are sometimes installed under Program Files; the executable's
	// own file name gets one more chance against the game lexicons.
	stem := taxonomy.Stem(f.path)
	if f.lexiconMatch(stem) || f.keywordMatch(stem) {
		return types.CategoryGames, true
	}
	return types.CategoryPrograms, true
}

func matchExtension(f *facts) (types.Category, bool) {
	if cat, ok := taxonomy.ContentExtensions[f.ext]; ok {
		return cat, true
	}
	if f.ext != "" || f.shortcut || f.internet {
		return "", false
	}
	switch f.rec.Kind {
	case types.KindText, types.KindPDF:
		return types.CategoryDocuments, true
	case types.KindImage:
		return types.CategoryImages, true
	}
	return "", false
}

func matchBareExecutable(f *facts) (types.Category, bool) {
	return types.CategoryPrograms, f.rec.Kind == types.KindExecutable || taxonomy.ExecutableExtensions[f.ext]
}

func matchShortcutFallback(f *facts) (types.Category, bool) {
	return types.CategoryShortcutsOther, f.shortcut
}

func matchInternetLink(f *facts) (types.Category, bool) {
	if !f.internet {
		return "", false
	}
	if cat, ok := taxonomy.SiteCategory(f.path); ok {
		return cat, true
	}
	return types.CategoryInternetLinks, true
}

func matchOtherFile(f *facts) (types.Category, bool) {
	return types.CategoryFilesOther, f.ext != ""
}
