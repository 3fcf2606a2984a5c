package extractor

import "regexp"

// Body-text patterns tried after selector hints fail. Japanese and Western
// notations are both covered because the analyzed pages are a mix of both.
var (
	priceSymbolRe = regexp.MustCompile(`[¥$€£]\s*([0-9][0-9,]*(?:\.[0-9]+)?)`)
	priceYenRe    = regexp.MustCompile(`([0-9][0-9,]*)\s*円`)

	ratingFiveRe  = regexp.MustCompile(`([0-5](?:\.[0-9])?)\s*/\s*5`)
	ratingTenRe   = regexp.MustCompile(`([0-9](?:\.[0-9])?)\s*点`)
	ratingStarsRe = regexp.MustCompile(`★+`)
	reviewCountRe = regexp.MustCompile(`([0-9][0-9,]*)\s*(?:件のレビュー|件の口コミ|reviews)`)

	dateISORe = regexp.MustCompile(`\d{4}[-/]\d{1,2}[-/]\d{1,2}`)
	dateJPRe  = regexp.MustCompile(`(\d{4})年\s*(\d{1,2})月\s*(\d{1,2})日`)

	phoneRe  = regexp.MustCompile(`0\d{1,4}-\d{1,4}-\d{3,4}`)
	postalRe = regexp.MustCompile(`〒\s*\d{3}-\d{4}`)
	// Prefecture + locality + block, the common written form of a Japanese
	// street address.
	addressJPRe = regexp.MustCompile(`(?:東京都|北海道|京都府|大阪府|[一-龠ぁ-ん]{2,3}県)[一-龠ぁ-んァ-ヶa-zA-Z0-9０-９\-ー−]{2,30}`)

	hoursRe = regexp.MustCompile(`(\d{1,2}:\d{2})\s*[-~〜ー]\s*(\d{1,2}:\d{2})`)

	durationMinRe  = regexp.MustCompile(`(?:調理時間|所要時間|totaltime|total time)[:：]?\s*(\d+)\s*(?:分|min)`)
	durationHourRe = regexp.MustCompile(`(?:調理時間|所要時間)[:：]?\s*(\d+)\s*時間`)

	yieldRe = regexp.MustCompile(`(\d+)\s*(?:人分|servings?)`)

	ingredientLineRe  = regexp.MustCompile(`^(?:材料|(?i:ingredients?))[:：]?\s*(.*)$`)
	instructionLineRe = regexp.MustCompile(`^(?:手順|作り方|ステップ|(?i:step))\s*(\d+)?[:：.．]?\s*(.+)$`)

	questionLineRe = regexp.MustCompile(`^\s*(?:Q|Ｑ)\s*\d*\s*[:：.．]\s*(.+)$`)
	answerLineRe   = regexp.MustCompile(`^\s*(?:A|Ａ)\s*\d*\s*[:：.．]\s*(.+)$`)

	salaryRe       = regexp.MustCompile(`(?:月給|年収|時給|給与)[:：]?\s*([0-9,万~〜\-]+\s*円?)|(?:salary[:：]?\s*)([$€£]?[0-9,]+(?:\s*-\s*[$€£]?[0-9,]+)?)`)
	jobLocationRe  = regexp.MustCompile(`(?:勤務地|job location)[:：]?\s*([^\n]{1,40})`)
	venueRe        = regexp.MustCompile(`(?:開催場所|会場|venue)[:：]?\s*([^\n]{1,60})`)
	startDateLineRe = regexp.MustCompile(`(?:開催日時?|日時|date)[:：]?\s*([^\n]{1,40})`)

	geoPositionRe = regexp.MustCompile(`(-?\d{1,3}\.\d+)\s*[;,]\s*(-?\d{1,3}\.\d+)`)
)
