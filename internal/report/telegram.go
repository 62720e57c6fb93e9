package report

import "net/url"

// siteURL is the link attached to every Telegram share.
const siteURL = "https://egfinancefx.com"

// TelegramShareURL builds a t.me deep link that opens Telegram's share
// sheet pre-filled with the report text.
func TelegramShareURL(text string) string {
	q := url.Values{}
	q.Set("url", siteURL)
	q.Set("text", text)
	return "https://t.me/share/url?" + q.Encode()
}
