// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package oledsim_test

import (
	"log"

	"github.com/GermanBionicSystems/oled/oledsim"
	"github.com/GermanBionicSystems/oled/ssd1x06"
)

func Example() {
	bus := oledsim.New(&oledsim.SH1106Opts)
	defer bus.Halt()
	opts := ssd1x06.DefaultOpts
	opts.Variant = ssd1x06.SSD1106
	dev, err := ssd1x06.NewI2C(bus, &opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.DisplayString(3, 16, "Hello", false); err != nil {
		log.Fatal(err)
	}
	if err := dev.DisplayString(4, 16, "world", true); err != nil {
		log.Fatal(err)
	}
	if err := bus.Refresh(); err != nil {
		log.Fatal(err)
	}
}
