package scrape

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func sendRequest(url string, method string, header map[string]string, response any) error {

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return fmt.Errorf("error making request\n%w", err)
	}

	for k, v := range header {
		req.Header.Add(k, v)
	}

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request\n%w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s from %s", res.Status, url)
	}

	return json.NewDecoder(res.Body).Decode(response)
}
