package spndb

import (
	"github.com/aldas/go-j1939-client"
)

// Definitions is the built-in SPN catalog covering parameter groups commonly
// broadcast by diesel generators and industrial engines (SAE J1939-71).
// Point ID is the SPN number which is globally unique per the standard.
//
// Values are compiled-in constants, never mutated. Use NewDatabase to build
// lookup indexes over this slice or Default for the shared process-wide
// database.
var Definitions = []j1939.SPNDef{
	// EEC1 - Electronic Engine Controller 1 (PGN 61444 / 0xF004), broadcast every 10-100ms
	{SPN: 899, Name: "engine_torque_mode", PGN: 61444, StartByte: 0, BitLength: 4, Scale: 1, DataType: j1939.DataTypeUint8},
	{SPN: 4154, Name: "actual_engine_retarder_percent", PGN: 61444, StartByte: 1, BitLength: 8, Scale: 1, Offset: -125, Unit: "%", DataType: j1939.DataTypeUint8},
	{SPN: 512, Name: "drivers_demand_engine_percent", PGN: 61444, StartByte: 1, BitLength: 8, Scale: 1, Offset: -125, Unit: "%", DataType: j1939.DataTypeUint8},
	{SPN: 513, Name: "actual_engine_percent_torque", PGN: 61444, StartByte: 2, BitLength: 8, Scale: 1, Offset: -125, Unit: "%", DataType: j1939.DataTypeUint8},
	{SPN: 190, Name: "engine_speed", PGN: 61444, StartByte: 3, BitLength: 16, Scale: 0.125, Unit: "RPM", DataType: j1939.DataTypeUint16},
	{SPN: 1483, Name: "eec1_source_address", PGN: 61444, StartByte: 5, BitLength: 8, Scale: 1, DataType: j1939.DataTypeUint8},
	{SPN: 1675, Name: "engine_starter_mode", PGN: 61444, StartByte: 6, BitLength: 4, Scale: 1, DataType: j1939.DataTypeUint8},
	{SPN: 2432, Name: "engine_demand_percent_torque", PGN: 61444, StartByte: 7, BitLength: 8, Scale: 1, Offset: -125, Unit: "%", DataType: j1939.DataTypeUint8},

	// EEC2 - Electronic Engine Controller 2 (PGN 61443 / 0xF003), broadcast every 50ms
	{SPN: 558, Name: "accelerator_pedal_1_low_switch", PGN: 61443, StartByte: 0, BitLength: 2, Scale: 1, DataType: j1939.DataTypeUint8},
	{SPN: 559, Name: "accelerator_pedal_kickdown", PGN: 61443, StartByte: 0, StartBit: 2, BitLength: 2, Scale: 1, DataType: j1939.DataTypeUint8},
	{SPN: 1437, Name: "road_speed_limit_status", PGN: 61443, StartByte: 0, StartBit: 4, BitLength: 2, Scale: 1, DataType: j1939.DataTypeUint8},
	{SPN: 2970, Name: "accelerator_pedal_2_low_switch", PGN: 61443, StartByte: 0, StartBit: 6, BitLength: 2, Scale: 1, DataType: j1939.DataTypeUint8},
	{SPN: 91, Name: "accelerator_pedal_position_1", PGN: 61443, StartByte: 1, BitLength: 8, Scale: 0.4, Unit: "%", DataType: j1939.DataTypeUint8},
	{SPN: 92, Name: "percent_load_current_speed", PGN: 61443, StartByte: 2, BitLength: 8, Scale: 1, Unit: "%", DataType: j1939.DataTypeUint8},
	{SPN: 974, Name: "remote_accelerator_position", PGN: 61443, StartByte: 3, BitLength: 8, Scale: 0.4, Unit: "%", DataType: j1939.DataTypeUint8},
	{SPN: 29, Name: "accelerator_pedal_position_2", PGN: 61443, StartByte: 4, BitLength: 8, Scale: 0.4, Unit: "%", DataType: j1939.DataTypeUint8},
	{SPN: 2979, Name: "vehicle_acceleration_rate_limit", PGN: 61443, StartByte: 5, BitLength: 8, Scale: 1, DataType: j1939.DataTypeUint8},
	{SPN: 5021, Name: "momentary_engine_max_power_enable", PGN: 61443, StartByte: 6, BitLength: 2, Scale: 1, DataType: j1939.DataTypeUint8},

	// EEC3 - Electronic Engine Controller 3 (PGN 65247 / 0xFEDF), broadcast every 250ms
	{SPN: 514, Name: "nominal_friction_percent_torque", PGN: 65247, StartByte: 0, BitLength: 8, Scale: 1, Offset: -125, Unit: "%", DataType: j1939.DataTypeUint8},
	{SPN: 515, Name: "engine_desired_operating_speed", PGN: 65247, StartByte: 1, BitLength: 16, Scale: 0.125, Unit: "RPM", DataType: j1939.DataTypeUint16},
	{SPN: 519, Name: "engine_operating_speed_asymmetry_adjust", PGN: 65247, StartByte: 3, BitLength: 8, Scale: 1, DataType: j1939.DataTypeUint8},
	{SPN: 2978, Name: "estimated_engine_parasitic_losses", PGN: 65247, StartByte: 4, BitLength: 8, Scale: 1, Offset: -125, Unit: "%", DataType: j1939.DataTypeUint8},
	{SPN: 6595, Name: "aftertreatment_1_exhaust_gas_mass_flow", PGN: 65247, StartByte: 5, BitLength: 16, Scale: 0.2, Unit: "kg/h", DataType: j1939.DataTypeUint16},

	// ET1 - Engine Temperature 1 (PGN 65262 / 0xFEEE), broadcast every 1000ms
	{SPN: 110, Name: "engine_coolant_temperature", PGN: 65262, StartByte: 0, BitLength: 8, Scale: 1, Offset: -40, Unit: "C", DataType: j1939.DataTypeUint8},
	{SPN: 174, Name: "fuel_temperature", PGN: 65262, StartByte: 1, BitLength: 8, Scale: 1, Offset: -40, Unit: "C", DataType: j1939.DataTypeUint8},
	{SPN: 175, Name: "engine_oil_temperature_1", PGN: 65262, StartByte: 2, BitLength: 16, Scale: 0.03125, Offset: -273, Unit: "C", DataType: j1939.DataTypeUint16},
	{SPN: 176, Name: "turbo_oil_temperature", PGN: 65262, StartByte: 4, BitLength: 16, Scale: 0.03125, Offset: -273, Unit: "C", DataType: j1939.DataTypeUint16},
	{SPN: 52, Name: "engine_intercooler_temperature", PGN: 65262, StartByte: 6, BitLength: 8, Scale: 1, Offset: -40, Unit: "C", DataType: j1939.DataTypeUint8},
	{SPN: 1134, Name: "engine_intercooler_thermostat_opening", PGN: 65262, StartByte: 7, BitLength: 8, Scale: 0.4, Unit: "%", DataType: j1939.DataTypeUint8},

	// EFL/P1 - Engine Fluid Level/Pressure 1 (PGN 65263 / 0xFEEF), broadcast every 500ms
	{SPN: 94, Name: "fuel_delivery_pressure", PGN: 65263, StartByte: 0, BitLength: 8, Scale: 4, Unit: "kPa", DataType: j1939.DataTypeUint8},
	{SPN: 22, Name: "extended_crankcase_blowby_pressure", PGN: 65263, StartByte: 1, BitLength: 8, Scale: 0.05, Unit: "kPa", DataType: j1939.DataTypeUint8},
	{SPN: 98, Name: "engine_oil_level", PGN: 65263, StartByte: 2, BitLength: 8, Scale: 0.4, Unit: "%", DataType: j1939.DataTypeUint8},
	{SPN: 100, Name: "engine_oil_pressure", PGN: 65263, StartByte: 3, BitLength: 8, Scale: 4, Unit: "kPa", DataType: j1939.DataTypeUint8},
	{SPN: 101, Name: "crankcase_pressure", PGN: 65263, StartByte: 4, BitLength: 16, Scale: 0.0078125, Offset: -250, Unit: "kPa", DataType: j1939.DataTypeUint16},
	{SPN: 109, Name: "coolant_pressure", PGN: 65263, StartByte: 6, BitLength: 8, Scale: 2, Unit: "kPa", DataType: j1939.DataTypeUint8},
	{SPN: 111, Name: "coolant_level", PGN: 65263, StartByte: 7, BitLength: 8, Scale: 0.4, Unit: "%", DataType: j1939.DataTypeUint8},

	// IC1 - Inlet/Exhaust Conditions 1 (PGN 65270 / 0xFEF6), broadcast every 500ms
	{SPN: 81, Name: "particulate_trap_inlet_pressure", PGN: 65270, StartByte: 0, BitLength: 8, Scale: 0.5, Unit: "kPa", DataType: j1939.DataTypeUint8},
	{SPN: 102, Name: "boost_pressure", PGN: 65270, StartByte: 1, BitLength: 8, Scale: 2, Unit: "kPa", DataType: j1939.DataTypeUint8},
	{SPN: 105, Name: "intake_manifold_temperature", PGN: 65270, StartByte: 2, BitLength: 8, Scale: 1, Offset: -40, Unit: "C", DataType: j1939.DataTypeUint8},
	{SPN: 106, Name: "air_inlet_pressure", PGN: 65270, StartByte: 3, BitLength: 8, Scale: 2, Unit: "kPa", DataType: j1939.DataTypeUint8},
	{SPN: 107, Name: "air_filter_differential_pressure", PGN: 65270, StartByte: 4, BitLength: 8, Scale: 0.05, Unit: "kPa", DataType: j1939.DataTypeUint8},
	{SPN: 173, Name: "exhaust_gas_temperature", PGN: 65270, StartByte: 5, BitLength: 16, Scale: 0.03125, Offset: -273, Unit: "C", DataType: j1939.DataTypeUint16},
	{SPN: 112, Name: "coolant_filter_differential_pressure", PGN: 65270, StartByte: 7, BitLength: 8, Scale: 0.5, Unit: "kPa", DataType: j1939.DataTypeUint8},

	// VEP1 - Vehicle Electrical Power 1 (PGN 65271 / 0xFEF7), broadcast every 1000ms
	{SPN: 114, Name: "net_battery_current", PGN: 65271, StartByte: 0, BitLength: 16, Scale: 1, Offset: -125, Unit: "A", DataType: j1939.DataTypeInt16},
	{SPN: 115, Name: "alternator_current", PGN: 65271, StartByte: 2, BitLength: 16, Scale: 1, Unit: "A", DataType: j1939.DataTypeUint16},
	{SPN: 168, Name: "battery_potential", PGN: 65271, StartByte: 4, BitLength: 16, Scale: 0.05, Unit: "V", DataType: j1939.DataTypeUint16},
	{SPN: 158, Name: "keyswitch_battery_potential", PGN: 65271, StartByte: 6, BitLength: 16, Scale: 0.05, Unit: "V", DataType: j1939.DataTypeUint16},

	// AMB - Ambient Conditions (PGN 65269 / 0xFEF5), broadcast every 1000ms
	{SPN: 108, Name: "barometric_pressure", PGN: 65269, StartByte: 0, BitLength: 8, Scale: 0.5, Unit: "kPa", DataType: j1939.DataTypeUint8},
	{SPN: 170, Name: "cab_interior_temperature", PGN: 65269, StartByte: 1, BitLength: 16, Scale: 0.03125, Offset: -273, Unit: "C", DataType: j1939.DataTypeUint16},
	{SPN: 171, Name: "ambient_air_temperature", PGN: 65269, StartByte: 3, BitLength: 16, Scale: 0.03125, Offset: -273, Unit: "C", DataType: j1939.DataTypeUint16},
	{SPN: 172, Name: "air_inlet_temperature", PGN: 65269, StartByte: 5, BitLength: 8, Scale: 1, Offset: -40, Unit: "C", DataType: j1939.DataTypeUint8},
	{SPN: 79, Name: "road_surface_temperature", PGN: 65269, StartByte: 6, BitLength: 16, Scale: 0.03125, Offset: -273, Unit: "C", DataType: j1939.DataTypeUint16},

	// LFE - Liquid Fuel Economy (PGN 65266 / 0xFEF2), broadcast every 100ms
	{SPN: 183, Name: "fuel_rate", PGN: 65266, StartByte: 0, BitLength: 16, Scale: 0.05, Unit: "L/h", DataType: j1939.DataTypeUint16},
	{SPN: 184, Name: "instantaneous_fuel_economy", PGN: 65266, StartByte: 2, BitLength: 16, Scale: 0.001953125, Unit: "km/L", DataType: j1939.DataTypeUint16},
	{SPN: 185, Name: "average_fuel_economy", PGN: 65266, StartByte: 4, BitLength: 16, Scale: 0.001953125, Unit: "km/L", DataType: j1939.DataTypeUint16},
	{SPN: 51, Name: "throttle_position", PGN: 65266, StartByte: 6, BitLength: 8, Scale: 0.4, Unit: "%", DataType: j1939.DataTypeUint8},

	// HOURS - Engine Hours, Revolutions (PGN 65253 / 0xFEE5), broadcast on request or every 1000ms
	{SPN: 247, Name: "engine_total_hours_of_operation", PGN: 65253, StartByte: 0, BitLength: 32, Scale: 0.05, Unit: "h", DataType: j1939.DataTypeUint32},
	{SPN: 249, Name: "engine_total_revolutions", PGN: 65253, StartByte: 4, BitLength: 32, Scale: 1000, Unit: "r", DataType: j1939.DataTypeUint32},

	// FC - Fuel Consumption (PGN 65257 / 0xFEE9), broadcast every 1000ms
	{SPN: 182, Name: "engine_trip_fuel", PGN: 65257, StartByte: 0, BitLength: 32, Scale: 0.5, Unit: "L", DataType: j1939.DataTypeUint32},
	{SPN: 250, Name: "engine_total_fuel_used", PGN: 65257, StartByte: 4, BitLength: 32, Scale: 0.5, Unit: "L", DataType: j1939.DataTypeUint32},

	// VH - Vehicle Hours (PGN 65217 / 0xFEC1), broadcast every 1000ms
	{SPN: 246, Name: "engine_total_idle_hours", PGN: 65217, StartByte: 0, BitLength: 32, Scale: 0.05, Unit: "h", DataType: j1939.DataTypeUint32},
	{SPN: 248, Name: "engine_total_pto_hours", PGN: 65217, StartByte: 4, BitLength: 32, Scale: 0.05, Unit: "h", DataType: j1939.DataTypeUint32},

	// DD - Distance (PGN 65248 / 0xFEE0), broadcast every 1000ms
	{SPN: 244, Name: "trip_distance", PGN: 65248, StartByte: 0, BitLength: 32, Scale: 0.125, Unit: "km", DataType: j1939.DataTypeUint32},
	{SPN: 245, Name: "total_vehicle_distance", PGN: 65248, StartByte: 4, BitLength: 32, Scale: 0.125, Unit: "km", DataType: j1939.DataTypeUint32},

	// CCVS - Cruise Control/Vehicle Speed (PGN 65265 / 0xFEF1), broadcast every 100ms
	{SPN: 69, Name: "two_speed_axle_switch", PGN: 65265, StartByte: 0, BitLength: 2, Scale: 1, DataType: j1939.DataTypeUint8},
	{SPN: 70, Name: "parking_brake_switch", PGN: 65265, StartByte: 0, StartBit: 2, BitLength: 2, Scale: 1, DataType: j1939.DataTypeUint8},
	{SPN: 84, Name: "wheel_based_vehicle_speed", PGN: 65265, StartByte: 1, BitLength: 16, Scale: 0.00390625, Unit: "km/h", DataType: j1939.DataTypeUint16},
	{SPN: 595, Name: "cruise_control_active", PGN: 65265, StartByte: 3, BitLength: 2, Scale: 1, DataType: j1939.DataTypeUint8},
	{SPN: 596, Name: "cruise_control_enable_switch", PGN: 65265, StartByte: 3, StartBit: 2, BitLength: 2, Scale: 1, DataType: j1939.DataTypeUint8},
	{SPN: 86, Name: "cruise_control_set_speed", PGN: 65265, StartByte: 5, BitLength: 8, Scale: 1, Unit: "km/h", DataType: j1939.DataTypeUint8},
	{SPN: 976, Name: "pto_state", PGN: 65265, StartByte: 6, BitLength: 5, Scale: 1, DataType: j1939.DataTypeUint8},
}
