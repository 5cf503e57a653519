package po

// Rating 表示视频的内容分级。零值表示未设置。
type Rating string

// 分级常量定义
const (
	RatingER  Rating = "ER"
	RatingL   Rating = "L"
	Rating10  Rating = "10"
	Rating12  Rating = "12"
	Rating14  Rating = "14"
	Rating16  Rating = "16"
	Rating18  Rating = "18"
)

var ratings = []Rating{RatingER, RatingL, Rating10, Rating12, Rating14, Rating16, Rating18}

// RatingOf 按标签解析分级。未识别的标签返回 false，由自校验报告
// "'rating' should not be null"，而不是在解析阶段失败。
func RatingOf(label string) (Rating, bool) {
	for _, r := range ratings {
		if string(r) == label {
			return r, true
		}
	}
	return "", false
}

// Defined 报告分级是否已设置。
func (r Rating) Defined() bool {
	return r != ""
}
