package recommend

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/schema-advisor/backend/classifier"
)

// businessSubtype is one LocalBusiness narrowing candidate with its keyword
// evidence set.
type businessSubtype struct {
	Schema   string
	Keywords []string
}

// businessSubtypes are checked in order; the first match wins.
var businessSubtypes = []businessSubtype{
	{"Restaurant", []string{"レストラン", "食堂", "居酒屋", "カフェ", "ランチ", "ディナー", "restaurant", "cafe", "menu", "dining"}},
	{"Store", []string{"ショップ", "売店", "専門店", "取扱商品", "store", "shop", "boutique", "retail"}},
	{"Hotel", []string{"ホテル", "旅館", "宿泊", "チェックイン", "客室", "hotel", "inn", "rooms", "check-in"}},
	{"Hospital", []string{"病院", "クリニック", "診療", "外来", "医院", "hospital", "clinic", "patients", "medical"}},
	{"School", []string{"学校", "スクール", "塾", "教室", "生徒", "school", "academy", "students"}},
	{"Gym", []string{"ジム", "フィットネス", "トレーニング", "gym", "fitness", "workout", "training"}},
	{"BeautySalon", []string{"美容室", "サロン", "エステ", "ネイル", "ヘアー", "salon", "beauty", "spa", "hair"}},
}

var (
	businessHoursRe = regexp.MustCompile(`営業時間|定休日|\d{1,2}:\d{2}\s*[-~〜ー]\s*\d{1,2}:\d{2}|opening hours|business hours`)
	geoTextRe       = regexp.MustCompile(`〒\s*\d{3}-\d{4}|東京都|北海道|京都府|大阪府|[一-龠ぁ-ん]{2,3}県|住所|アクセス|address|directions`)
)

// adviseBusiness refines a LocalBusiness classification: suggest the
// narrowest applicable subtype, and recommend OpeningHoursSpecification and
// GeoCoordinates when the page shows hours or location text that is not yet
// marked up.
func adviseBusiness(data classifier.ExtractedPageData, existing map[string]bool) *BusinessAdvice {
	advice := &BusinessAdvice{}
	text := strings.ToLower(data.Title + " " + data.BodyText)

	for _, subtype := range businessSubtypes {
		if existing[subtype.Schema] {
			continue
		}
		if kw, ok := matchAnyKeyword(text, subtype.Keywords); ok {
			advice.SuggestedSubtype = subtype.Schema
			advice.SubtypeReason = fmt.Sprintf("Page content mentions %q; %s is more specific than LocalBusiness and unlocks richer results.", kw, subtype.Schema)
			advice.Items = append(advice.Items, Item{
				Schema:     subtype.Schema,
				Priority:   PriorityHigh,
				Reason:     advice.SubtypeReason,
				Impact:     impactFor("LocalBusiness"),
				Difficulty: difficultyFor("LocalBusiness"),
				SEOValue:   seoValueFor("LocalBusiness"),
			})
			break
		}
	}

	if businessHoursRe.MatchString(data.BodyText) {
		advice.AddOpeningHours = true
		advice.Items = append(advice.Items, Item{
			Schema:     "OpeningHoursSpecification",
			Priority:   PriorityHigh,
			Reason:     "The page lists business hours; marking them up makes them machine-readable.",
			Impact:     "Hours shown directly in local search results",
			Difficulty: "easy",
			SEOValue:   60,
		})
	}

	if geoTextRe.MatchString(data.BodyText) {
		advice.AddGeo = true
		advice.Items = append(advice.Items, Item{
			Schema:     "GeoCoordinates",
			Priority:   PriorityLow,
			Reason:     "The page shows address or access information; adding coordinates improves map placement.",
			Impact:     "More precise map pack positioning",
			Difficulty: "easy",
			SEOValue:   55,
		})
	}

	if advice.SuggestedSubtype == "" && !advice.AddOpeningHours && !advice.AddGeo {
		return nil
	}
	return advice
}

func matchAnyKeyword(lowerText string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			return kw, true
		}
	}
	return "", false
}
