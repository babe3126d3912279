package alphavantage

// Alpha Vantage mostly answers 200 with an "Error Message", "Note" or
// "Information" key; these are what reaches us when it does not.
var httpStatusMap = map[int]string{
	400: "Bad Request. \n" +
		"Malformed query string or unsupported parameter combination.",
	401: "Unauthorized. Invalid API Key",
	403: "Forbidden. \n" +
		"Premium endpoint or API key without access to this function.",
	404: "Invalid URL",
	405: "Invalid HTTP method",
	429: "Rate limit exceeded.\n" +
		"Free keys are limited per minute and per day, " +
		"slow down or upgrade the key",
	500: "Internal Server Error",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
}
