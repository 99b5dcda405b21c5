package translation

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Func translates message and substitutes its :name placeholders.
type Func func(message string, params map[string]string) string

// Identity substitutes placeholders without translating.
func Identity(message string, params map[string]string) string {
	return Replace(message, params)
}

type dictionary map[string]string

// Translator holds per-language dictionaries keyed by the English source text.
type Translator struct {
	mtx          sync.RWMutex
	dictionaries map[language.Tag]dictionary

	fallback language.Tag
	logger   *zap.Logger
}

func NewTranslator(fallback language.Tag, logger *zap.Logger) *Translator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Translator{
		dictionaries: make(map[language.Tag]dictionary),
		fallback:     fallback,
		logger:       logger,
	}
}

func (t *Translator) SetTranslations(lang language.Tag, translations map[string]string) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if _, ok := t.dictionaries[lang]; !ok {
		t.dictionaries[lang] = make(dictionary)
	}

	for message, translation := range translations {
		t.dictionaries[lang][message] = translation
	}
}

// LoadDir reads every <tag>.yaml file in dir as a flat message -> translation map.
func (t *Translator) LoadDir(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return err
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		lang, err := language.Parse(name)
		if err != nil {
			return fmt.Errorf("translation file %s: %w", file, err)
		}

		b, err := os.ReadFile(file)
		if err != nil {
			return err
		}

		var translations map[string]string
		if err := yaml.Unmarshal(b, &translations); err != nil {
			return fmt.Errorf("translation file %s: %w", file, err)
		}

		t.SetTranslations(lang, translations)
		t.logger.Debug("translations loaded", zap.String("lang", lang.String()), zap.Int("messages", len(translations)))
	}

	return nil
}

func (t *Translator) translateMessage(lang language.Tag, message string) string {
	t.mtx.RLock()
	translatedMessage := t.dictionaries[lang][message]
	if translatedMessage == "" {
		base, conf := lang.Base()
		if conf == language.Exact {
			baseLang, _ := language.Compose(base)
			translatedMessage = t.dictionaries[baseLang][message]
		}
	}
	t.mtx.RUnlock()

	if translatedMessage == "" {
		t.logger.Debug("untranslated", zap.String("lang", lang.String()), zap.String("message", message))
		return message
	}
	return translatedMessage
}

func (t *Translator) Translate(lang language.Tag, message string, params map[string]string) string {
	if lang != t.fallback {
		message = t.translateMessage(lang, message)
	}
	return Replace(message, params)
}

// Instance binds the translator to one language.
func (t *Translator) Instance(lang language.Tag) Func {
	return func(message string, params map[string]string) string {
		return t.Translate(lang, message, params)
	}
}

// Languages returns the fallback language followed by every loaded language.
func (t *Translator) Languages() []language.Tag {
	t.mtx.RLock()
	defer t.mtx.RUnlock()

	tags := make([]language.Tag, 0, len(t.dictionaries)+1)
	tags = append(tags, t.fallback)
	for lang := range t.dictionaries {
		if lang != t.fallback {
			tags = append(tags, lang)
		}
	}
	sort.Slice(tags[1:], func(i, j int) bool {
		return tags[i+1].String() < tags[j+1].String()
	})
	return tags
}

// Match picks the best supported language for an Accept-Language header.
func (t *Translator) Match(acceptLanguage string) language.Tag {
	supported := t.Languages()
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return t.fallback
	}
	_, idx, _ := language.NewMatcher(supported).Match(desired...)
	return supported[idx]
}

// Replace substitutes :name, :Name and :NAME placeholders. Longer keys are
// replaced first so :resources is not clobbered by :resource.
func Replace(message string, params map[string]string) string {
	if len(params) == 0 {
		return message
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*6)
	for _, k := range keys {
		v := params[k]
		pairs = append(pairs,
			":"+strings.ToUpper(k), strings.ToUpper(v),
			":"+upperFirst(k), upperFirst(v),
			":"+k, v,
		)
	}
	return strings.NewReplacer(pairs...).Replace(message)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
