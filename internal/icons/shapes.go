package icons

// registerBuiltins populates both slot registries with the fastener
// icon inventory. Token aliases follow the names people actually write
// in parts spreadsheets.
func registerBuiltins(r *Registry) {
	// Screw drive recesses, top view.
	r.Register(SlotTop, producer(headHexTop), "head_hex", "hex_head", "hex")
	r.Register(SlotTop, producer(headSocketTop), "head_socket", "socket_head", "socket")
	r.Register(SlotTop, producer(headTorxTop), "head_torx", "torx_head", "torx")
	r.Register(SlotTop, producer(headSquareTop), "head_square", "square_head", "square", "robertson", "robertson_head")
	r.Register(SlotTop, producer(headSlottedTop), "head_slotted", "slotted_head", "slotted", "flat_head", "flat")
	r.Register(SlotTop, producer(headPhillipsTop), "head_phillips", "phillips_head", "phillips")
	r.Register(SlotTop, producer(headPozidrivTop), "head_pozidriv", "pozidriv_head", "pozidriv", "pozi")

	// Screw profiles, side view.
	r.Register(SlotSide, producer(buttonHeadSide), "button_head", "button")
	r.Register(SlotSide, producer(capHeadSide), "cap_head", "cap")
	r.Register(SlotSide, producer(capHeadSide), "hex_head", "hex", "bolt")
	r.Register(SlotSide, producer(flushHeadSide), "flush_head", "flat_head", "flat", "countersunk")
	r.Register(SlotSide, producer(woodScrewSide), "wood_screw", "wood")

	// Washers.
	r.Register(SlotTop, producer(washerStdTop(80, 35)), "washer_std", "washer")
	r.Register(SlotSide, producer(washerStdSide(80, 35)), "washer_std", "washer")
	r.Register(SlotTop, producer(washerStdTop(80, 80.0/3)), "washer_fender", "fender")
	r.Register(SlotSide, producer(washerStdSide(80, 80.0/3)), "washer_fender", "fender")
	r.Register(SlotTop, producer(washerSplitTop), "washer_split", "split")
	r.Register(SlotSide, producer(washerSplitSide), "washer_split", "split")
	r.Register(SlotTop, producer(washerStarInnerTop), "washer_star_inner", "star_inner")
	r.Register(SlotSide, producer(washerStdSide(80, 40)), "washer_star_inner", "star_inner")
	r.Register(SlotTop, producer(washerStarOuterTop), "washer_star_outer", "star_outer", "star")
	r.Register(SlotSide, producer(washerStdSide(80, 40)), "washer_star_outer", "star_outer", "star")

	// Nuts.
	r.Register(SlotTop, producer(nutStandardTop), "nut_standard", "nut")
	r.Register(SlotSide, producer(nutStandardSide), "nut_standard", "nut")
	r.Register(SlotTop, producer(nutStandardTop), "nut_thin", "thin_nut")
	r.Register(SlotSide, producer(nutStandardSide), "nut_thin", "thin_nut")
	r.Register(SlotTop, producer(nutLockTop), "nut_lock", "nyloc")
	r.Register(SlotSide, producer(nutLockSide), "nut_lock", "nyloc")
	r.Register(SlotTop, producer(nutFlangeTop), "nut_flange", "flange_nut")
	r.Register(SlotSide, producer(nutFlangeSide), "nut_flange", "flange_nut")
	r.Register(SlotTop, producer(nutCapTop), "nut_cap", "cap_nut", "acorn", "acorn_nut")
	r.Register(SlotSide, producer(nutCapSide), "nut_cap", "cap_nut", "acorn", "acorn_nut")
	r.Register(SlotTop, producer(nutWingTop), "nut_wing", "wing_nut", "wing")
	r.Register(SlotSide, producer(nutWingSide), "nut_wing", "wing_nut", "wing")

	// Threaded inserts.
	r.Register(SlotTop, producer(insertHeatTop), "insert_heat", "heat_insert", "heat_set_insert", "hsi", "heat_set", "insert_press")
	r.Register(SlotSide, producer(insertHeatSide), "insert_heat", "heat_insert", "heat_set_insert", "hsi", "heat_set")
	r.Register(SlotTop, producer(insertWoodTop), "insert_wood", "wood_insert")
	r.Register(SlotSide, producer(insertWoodSide), "insert_wood", "wood_insert")
	r.Register(SlotSide, producer(insertPressSide), "insert_press", "press_insert")

	// Bearings and springs.
	r.Register(SlotTop, producer(bearingTop), "bearing")
	r.Register(SlotSide, producer(bearingSide), "bearing")
	r.Register(SlotSide, producer(bearingFlangeSide), "bearing_flange", "flange_bearing")
	r.Register(SlotTop, producer(springTop), "spring", "coil", "coil_spring")
	r.Register(SlotSide, producer(springSide), "spring", "coil", "coil_spring")
}
