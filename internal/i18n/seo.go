package i18n

import (
	"encoding/json"
	"strings"
)

// SEO is the per-language page metadata.
type SEO struct {
	Title       string
	Description string
	Keywords    string
	HTMLLang    string
	HrefLang    string
}

// Alternate is one hreflang link.
type Alternate struct {
	HrefLang string
	Href     string
}

// PageMeta is everything the page head needs for one language.
type PageMeta struct {
	SEO
	Canonical  string
	SiteName   string
	Alternates []Alternate
	JSONLD     string
}

const siteName = "DreamURL - Reaction Time Test"

// SEOFor returns the metadata for lang, falling back to the default.
func SEOFor(lang Language) SEO {
	if s, ok := seoConfig[lang]; ok {
		return s
	}
	return seoConfig[Default]
}

// Meta builds canonical, hreflang alternates and JSON-LD for lang under
// baseURL.
func Meta(baseURL string, lang Language) PageMeta {
	baseURL = strings.TrimRight(baseURL, "/")
	if _, ok := seoConfig[lang]; !ok {
		lang = Default
	}
	seo := seoConfig[lang]

	meta := PageMeta{
		SEO:       seo,
		Canonical: baseURL + "/" + string(lang),
		SiteName:  siteName,
	}
	for _, info := range Languages {
		meta.Alternates = append(meta.Alternates, Alternate{
			HrefLang: seoConfig[info.Code].HrefLang,
			Href:     baseURL + "/" + string(info.Code),
		})
	}
	meta.Alternates = append(meta.Alternates, Alternate{
		HrefLang: "x-default",
		Href:     baseURL + "/" + string(Default),
	})

	ld, err := json.Marshal(map[string]any{
		"@context":            "https://schema.org",
		"@type":               "WebApplication",
		"name":                seo.Title,
		"description":         seo.Description,
		"url":                 meta.Canonical,
		"applicationCategory": "Game",
		"operatingSystem":     "Web Browser",
		"offers": map[string]string{
			"@type":         "Offer",
			"price":         "0",
			"priceCurrency": "USD",
		},
		"inLanguage": seo.HTMLLang,
		"creator": map[string]string{
			"@type": "Organization",
			"name":  "DreamURL",
		},
	})
	if err == nil {
		meta.JSONLD = string(ld)
	}
	return meta
}

var seoConfig = map[Language]SEO{
	English: {
		Title:       "Reaction Time Test - Measure Your Reflexes | DreamURL",
		Description: "Test your reaction speed with our online reaction time game. Measure your reflexes, compete with friends, and improve your gaming performance. Free browser-based reflex testing.",
		Keywords:    "reaction time, reflex test, speed test, gaming performance, reaction speed, online game, browser game, reflex training",
		HTMLLang:    "en",
		HrefLang:    "en",
	},
	Korean: {
		Title:       "반응속도 테스트 - 반사신경 측정 게임 | DreamURL",
		Description: "온라인 반응속도 테스트로 당신의 반사신경을 측정하세요. 무료 브라우저 게임으로 반응속도 향상과 게이밍 실력을 키워보세요.",
		Keywords:    "반응속도, 반사신경, 속도측정, 게임실력, 반응테스트, 온라인게임, 브라우저게임, 반사신경훈련",
		HTMLLang:    "ko",
		HrefLang:    "ko",
	},
	Spanish: {
		Title:       "Test de Tiempo de Reacción - Mide tus Reflejos | DreamURL",
		Description: "Prueba tu velocidad de reacción con nuestro juego online. Mide tus reflejos, compite con amigos y mejora tu rendimiento gaming. Entrenamiento gratuito de reflejos.",
		Keywords:    "tiempo de reacción, test de reflejos, prueba de velocidad, rendimiento gaming, velocidad de reacción, juego online, juego navegador",
		HTMLLang:    "es",
		HrefLang:    "es",
	},
	Chinese: {
		Title:       "反应速度测试 - 测量反射能力 | DreamURL",
		Description: "通过我们的在线反应时间游戏测试您的反应速度。测量反射能力，与朋友竞争，提高游戏表现。免费的浏览器反射训练。",
		Keywords:    "反应时间, 反射测试, 速度测试, 游戏表现, 反应速度, 在线游戏, 浏览器游戏, 反射训练",
		HTMLLang:    "zh-CN",
		HrefLang:    "zh",
	},
	Japanese: {
		Title:       "反応速度テスト - 反射神経測定ゲーム | DreamURL",
		Description: "オンライン反応速度テストで反射神経を測定しましょう。友達と競い合い、ゲームパフォーマンスを向上させる無料ブラウザゲーム。",
		Keywords:    "反応時間, 反射テスト, スピードテスト, ゲームパフォーマンス, 反応速度, オンラインゲーム, ブラウザゲーム, 反射トレーニング",
		HTMLLang:    "ja",
		HrefLang:    "ja",
	},
}
