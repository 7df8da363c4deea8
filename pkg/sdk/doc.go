// Package laptopprice estimates laptop market prices in-process, without
// running the HTTP server.
//
//	client, err := laptopprice.New(laptopprice.WithModelFile("models/laptop_price.json"))
//	if err != nil {
//	    return err
//	}
//	est, err := client.Estimate(ctx, laptopprice.Spec{
//	    Brand: "Apple", Type: "Ultrabook", OS: "macOS", RAM: 16, Weight: 1.2,
//	    CPU: "Intel Core i5", GPU: "Intel", ScreenSize: 13.3,
//	    Resolution: "2560x1600", Storage: "512GB SSD",
//	})
//	fmt.Println(est.Formatted) // e.g. €1,095.63
//
// Valid field values are listed by Client.Catalog.
package laptopprice
