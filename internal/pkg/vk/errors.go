package vk

// Каждый шаг пайплайна публикации и каждая операция чтения статистики
// возвращают свой тип ошибки, чтобы веб-слой мог различать их через errors.As,
// а не по тексту сообщения. Message — оригинальный текст ошибки платформы.

type UploadTargetError struct {
	Message string
}

func (e *UploadTargetError) Error() string {
	return "vk: get wall upload server: " + e.Message
}

type SourceFetchError struct {
	Message string
}

func (e *SourceFetchError) Error() string {
	return "vk: fetch source image: " + e.Message
}

type UploadError struct {
	Message string
}

func (e *UploadError) Error() string {
	return "vk: upload photo: " + e.Message
}

type SaveError struct {
	Message string
}

func (e *SaveError) Error() string {
	return "vk: save wall photo: " + e.Message
}

type PublishError struct {
	Message string
}

func (e *PublishError) Error() string {
	return "vk: wall post: " + e.Message
}

type StatsError struct {
	Message string
}

func (e *StatsError) Error() string {
	return "vk: stats: " + e.Message
}

type MalformedResponseError struct {
	Message string
}

func (e *MalformedResponseError) Error() string {
	return "vk: malformed response: " + e.Message
}
