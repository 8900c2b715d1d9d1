package ftcapi

// Action describes the translation of one recognized method call on a
// hardware variable.
type Action struct {
	// The Java method name.
	JavaName string

	// Arguments appended after the translated source arguments, such as a
	// distance unit enumerant.
	ExtraArgs []string

	// An import implied by using the action, or the empty string.
	Import string
}

// actions maps each hardware kind to its table of recognized dialect method
// names.  A call on a hardware variable whose member is not in its kind's
// table is an unsupported construct and degrades to a comment.  The motor
// `set_mode` action is handled separately since its argument is a mode
// literal rather than an expression.
var actions = map[Kind]map[string]Action{
	KindMotor: {
		"set_power":            {JavaName: "setPower"},
		"get_power":            {JavaName: "getPower"},
		"set_mode":             {JavaName: "setMode"},
		"get_current_position": {JavaName: "getCurrentPosition"},
		"set_target_position":  {JavaName: "setTargetPosition"},
	},
	KindServo: {
		"set_position": {JavaName: "setPosition"},
		"get_position": {JavaName: "getPosition"},
	},
	KindDistanceSensor: {
		"get_distance": {
			JavaName:  "getDistance",
			ExtraArgs: []string{"DistanceUnit.CM"},
			Import:    ImportDistanceUnit,
		},
	},
	KindColorSensor: {
		"get_red":   {JavaName: "red"},
		"get_green": {JavaName: "green"},
		"get_blue":  {JavaName: "blue"},
		"get_alpha": {JavaName: "alpha"},
	},
	KindTouchSensor: {
		"is_pressed": {JavaName: "isPressed"},
	},
	KindIMU: {
		"get_heading": {JavaName: "getHeading", Import: ImportAngleUnit},
		"get_pitch":   {JavaName: "getPitch", Import: ImportAngleUnit},
		"get_roll":    {JavaName: "getRoll", Import: ImportAngleUnit},
	},
	KindAprilTag: {
		"get_detections": {JavaName: "getDetections"},
	},
	KindTensorFlow: {
		"get_recognitions": {JavaName: "getRecognitions"},
	},
	KindVisionPortal: {
		"stop_streaming":   {JavaName: "stopStreaming"},
		"resume_streaming": {JavaName: "resumeStreaming"},
	},
}

// LookupAction returns the action for the given kind and dialect method
// name.
func LookupAction(kind Kind, name string) (Action, bool) {
	table, ok := actions[kind]
	if !ok {
		return Action{}, false
	}

	act, ok := table[name]
	return act, ok
}

// Builtins maps global dialect call names to their Java call targets.  The
// telemetry builtin is handled separately since it maps to a batched
// telemetry write.
var Builtins = map[string]string{
	"sleep":            "sleep",
	"opmode_is_active": "opModeIsActive",
}

// TelemetryAdd is the dialect builtin that queues one telemetry entry.  The
// emitter appends a single `telemetry.update()` flush at the end of each
// block that contains at least one queued entry.
const TelemetryAdd = "telemetry_add"
