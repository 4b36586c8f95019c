package transcript

import "strings"

// Phrases KakaoTalk injects for room events. A message containing any of these
// is a system notification, not participant speech.
var systemKeywords = []string{
	"님이 들어왔습니다",
	"님이 나갔습니다",
	"님을 초대했습니다",
	"채팅방을 나갔습니다",
	"님이 삭제되었습니다",
	"톡을 닫았습니다",
	"대화내용을 저장했습니다",
}

// stickerToken is the placeholder the export writes for sticker messages.
const stickerToken = "이모티콘"

func isSystemContent(content string) bool {
	for _, kw := range systemKeywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return false
}

func isPhotoContent(content string) bool {
	t := strings.TrimSpace(content)
	return t == "사진" || strings.HasPrefix(t, "사진 ") || t == "사진을 보냈습니다."
}

func isVideoContent(content string) bool {
	t := strings.TrimSpace(content)
	return t == "동영상" || strings.HasPrefix(t, "동영상 ") || t == "동영상을 보냈습니다."
}

// isBoilerplate matches the export's file-header lines: the room title line,
// the save-date line and plain separators.
func isBoilerplate(line string) bool {
	return strings.Contains(line, "카카오톡 대화") ||
		strings.HasPrefix(line, "저장한 날짜") ||
		strings.HasPrefix(strings.TrimSpace(line), "---")
}
