package classifier

import "regexp"

// PageSignature is the static pattern set for one page type. Keywords are
// matched as case-insensitive regexes and every occurrence counts; the
// pattern lists are substring checks that count at most once each.
type PageSignature struct {
	Type            PageType
	Keywords        []string
	URLPatterns     []string
	TitlePatterns   []string
	ContentPatterns []string
}

// pageSignatures is the closed set of supported page types. Declaration
// order doubles as the tie-break order when scores are equal, so Article
// must stay first.
var pageSignatures = []PageSignature{
	{
		Type: TypeArticle,
		Keywords: []string{
			"article", "blog", "news", "column", "post",
			"記事", "ブログ", "ニュース", "コラム", "投稿",
		},
		URLPatterns:   []string{"/article", "/blog", "/news", "/column", "/post", "/entry"},
		TitlePatterns: []string{"とは", "について", "まとめ", "解説", "guide to", "what is"},
		ContentPatterns: []string{
			"公開日", "更新日", "執筆者", "著者",
			"published", "updated", "written by", "posted on", "min read",
		},
	},
	{
		Type: TypeProduct,
		Keywords: []string{
			"product", "item", "shop", "store", "buy", "purchase", "cart",
			"商品", "製品", "購入", "カート", "販売", "通販",
		},
		URLPatterns:   []string{"/product", "/item", "/shop", "/store", "/goods", "/p/"},
		TitlePatterns: []string{"通販", "販売", "価格", "buy", "price", "sale"},
		ContentPatterns: []string{
			"カートに入れる", "今すぐ購入", "在庫", "送料", "レビューを見る",
			"add to cart", "buy now", "in stock", "free shipping",
		},
	},
	{
		Type: TypeLocalBusiness,
		Keywords: []string{
			"access", "reservation", "business hours", "directions",
			"店舗", "営業時間", "アクセス", "予約", "お問い合わせ", "所在地",
		},
		URLPatterns:   []string{"/access", "/store", "/shop-info", "/about", "/company", "/contact"},
		TitlePatterns: []string{"店", "サロン", "クリニック", "教室", "公式サイト", "official site"},
		ContentPatterns: []string{
			"営業時間", "定休日", "駐車場", "最寄り駅", "電話番号",
			"opening hours", "closed on", "parking", "nearest station",
		},
	},
	{
		Type: TypeRecipe,
		Keywords: []string{
			"recipe", "cooking", "ingredient",
			"レシピ", "料理", "作り方", "材料", "調理", "簡単",
		},
		URLPatterns:   []string{"/recipe", "/cooking", "/ryouri"},
		TitlePatterns: []string{"レシピ", "の作り方", "recipe", "how to cook", "how to make"},
		ContentPatterns: []string{
			"材料", "作り方", "手順", "調理時間", "人分", "大さじ", "小さじ",
			"ingredients", "instructions", "prep time", "servings", "tbsp", "tsp",
		},
	},
	{
		Type: TypeEvent,
		Keywords: []string{
			"event", "seminar", "workshop", "concert", "festival",
			"イベント", "セミナー", "開催", "講演", "フェス", "ライブ",
		},
		URLPatterns:   []string{"/event", "/seminar", "/workshop", "/schedule"},
		TitlePatterns: []string{"開催", "イベント", "セミナー", "event", "tickets"},
		ContentPatterns: []string{
			"開催日時", "開催場所", "参加費", "申し込み", "定員",
			"date and time", "venue", "admission", "register now", "doors open",
		},
	},
	{
		Type: TypeFAQ,
		Keywords: []string{
			"faq", "question", "answer", "help",
			"よくある質問", "質問", "回答", "ヘルプ", "お困り",
		},
		URLPatterns:   []string{"/faq", "/help", "/qa", "/questions", "/support"},
		TitlePatterns: []string{"よくある質問", "faq", "q&a", "frequently asked"},
		ContentPatterns: []string{
			"q:", "a:", "q.", "a.", "q．", "a．", "質問:", "回答:",
		},
	},
	{
		Type: TypeHowTo,
		Keywords: []string{
			"how to", "tutorial", "step",
			"方法", "やり方", "手順", "使い方", "設定",
		},
		URLPatterns:   []string{"/howto", "/how-to", "/tutorial", "/guide"},
		TitlePatterns: []string{"方法", "やり方", "手順", "how to", "tutorial", "step by step"},
		ContentPatterns: []string{
			"ステップ", "まず", "次に", "最後に",
			"step 1", "step 2", "first,", "next,", "finally,",
		},
	},
	{
		Type: TypeReview,
		Keywords: []string{
			"review", "rating", "comparison",
			"レビュー", "口コミ", "評価", "感想", "比較", "おすすめ",
		},
		URLPatterns:   []string{"/review", "/kuchikomi", "/hikaku", "/ranking"},
		TitlePatterns: []string{"レビュー", "口コミ", "評判", "比較", "review", "vs"},
		ContentPatterns: []string{
			"星", "点満点", "メリット", "デメリット", "使ってみた",
			"pros", "cons", "verdict", "out of 5", "i tried",
		},
	},
	{
		Type: TypeJobPosting,
		Keywords: []string{
			"job", "career", "recruit", "hiring", "salary",
			"求人", "採用", "募集", "転職", "給与", "正社員",
		},
		URLPatterns:   []string{"/job", "/career", "/recruit", "/saiyo", "/kyujin"},
		TitlePatterns: []string{"求人", "採用", "募集", "job opening", "we're hiring", "careers"},
		ContentPatterns: []string{
			"応募資格", "勤務地", "給与", "雇用形態", "福利厚生", "応募方法",
			"qualifications", "job description", "apply now", "full-time", "benefits",
		},
	},
	{
		Type: TypeCourse,
		Keywords: []string{
			"course", "lesson", "curriculum", "learning",
			"講座", "コース", "レッスン", "カリキュラム", "受講", "学習",
		},
		URLPatterns:   []string{"/course", "/lesson", "/school", "/kouza"},
		TitlePatterns: []string{"講座", "入門", "コース", "course", "bootcamp", "masterclass"},
		ContentPatterns: []string{
			"受講料", "カリキュラム", "講師", "受講期間", "修了",
			"syllabus", "enroll", "instructor", "curriculum", "certificate",
		},
	},
}

// compiledSignature pairs a signature with its precompiled keyword regexes.
type compiledSignature struct {
	PageSignature
	keywordRes []*regexp.Regexp
}

var compiledSignatures = compileSignatures()

func compileSignatures() []compiledSignature {
	out := make([]compiledSignature, 0, len(pageSignatures))
	for _, sig := range pageSignatures {
		cs := compiledSignature{PageSignature: sig}
		for _, kw := range sig.Keywords {
			cs.keywordRes = append(cs.keywordRes, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(kw)))
		}
		out = append(out, cs)
	}
	return out
}

// Signatures returns the static signature table in declaration order.
func Signatures() []PageSignature {
	out := make([]PageSignature, len(pageSignatures))
	copy(out, pageSignatures)
	return out
}
