// Package smsc provides a Go client for the SMSC.RU SMS and e-mail gateway.
//
// Every request carries the account credentials and is sent to
// https://smsc.ru/sys/<command>.php. When a request fails it is retried on
// the mirrors www2.smsc.ru through www5.smsc.ru with growing connect
// timeouts.
//
// Basic usage:
//
//	client, err := smsc.New("login", "password")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	resp, err := client.SendSMS(ctx, "79991234567", "Hello", smsc.WithFormat(smsc.FormatFlash))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !resp.IsOK() {
//	    log.Fatal(resp.ErrorMessage())
//	}
//
//	var sent smsc.SendResult
//	if err := resp.Decode(&sent); err != nil {
//	    log.Fatal(err)
//	}
//
//	status, err := client.WaitForStatus(ctx, strconv.Itoa(sent.ID), "79991234567")
package smsc
