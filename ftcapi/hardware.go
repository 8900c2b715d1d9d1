// Package ftcapi holds the static mapping tables between the robot dialect
// and the FTC Java SDK: hardware kinds, action names, motor modes, gamepad
// fields, and import paths.  All tables are read-only after initialization
// and are safely shared between concurrent translation runs.
package ftcapi

// Kind identifies a category of hardware device.
type Kind int

// Enumeration of hardware kinds.
const (
	KindMotor Kind = iota
	KindServo
	KindDistanceSensor
	KindColorSensor
	KindTouchSensor
	KindIMU
	KindWebcam
	KindAprilTag
	KindTensorFlow
	KindVisionPortal

	// KindOpaque marks a declaration whose constructor name was not
	// recognized.  Opaque declarations still emit a best-effort field but
	// receive no specific action translation.
	KindOpaque
)

// Constructors maps dialect constructor names to hardware kinds.
var Constructors = map[string]Kind{
	"motor":                KindMotor,
	"servo":                KindServo,
	"distance_sensor":      KindDistanceSensor,
	"color_sensor":         KindColorSensor,
	"touch_sensor":         KindTouchSensor,
	"imu":                  KindIMU,
	"webcam":               KindWebcam,
	"apriltag_processor":   KindAprilTag,
	"tensorflow_processor": KindTensorFlow,
	"vision_portal":        KindVisionPortal,
}

// javaTypes maps hardware kinds to their Java field types.
var javaTypes = map[Kind]string{
	KindMotor:          "DcMotor",
	KindServo:          "Servo",
	KindDistanceSensor: "DistanceSensor",
	KindColorSensor:    "ColorSensor",
	KindTouchSensor:    "TouchSensor",
	KindIMU:            "IMU",
	KindWebcam:         "WebcamName",
	KindAprilTag:       "AprilTagProcessor",
	KindTensorFlow:     "TfodProcessor",
	KindVisionPortal:   "VisionPortal",
	KindOpaque:         "Object",
}

// javaImports maps hardware kinds to the import each one requires.  Opaque
// declarations require no import.
var javaImports = map[Kind]string{
	KindMotor:          "com.qualcomm.robotcore.hardware.DcMotor",
	KindServo:          "com.qualcomm.robotcore.hardware.Servo",
	KindDistanceSensor: "com.qualcomm.robotcore.hardware.DistanceSensor",
	KindColorSensor:    "com.qualcomm.robotcore.hardware.ColorSensor",
	KindTouchSensor:    "com.qualcomm.robotcore.hardware.TouchSensor",
	KindIMU:            "com.qualcomm.robotcore.hardware.IMU",
	KindWebcam:         "org.firstinspires.ftc.robotcore.external.hardware.camera.WebcamName",
	KindAprilTag:       "org.firstinspires.ftc.vision.apriltag.AprilTagProcessor",
	KindTensorFlow:     "org.firstinspires.ftc.vision.tfod.TfodProcessor",
	KindVisionPortal:   "org.firstinspires.ftc.vision.VisionPortal",
}

// kindNames maps hardware kinds to their dialect-facing display names.
var kindNames = map[Kind]string{
	KindMotor:          "motor",
	KindServo:          "servo",
	KindDistanceSensor: "distance sensor",
	KindColorSensor:    "color sensor",
	KindTouchSensor:    "touch sensor",
	KindIMU:            "imu",
	KindWebcam:         "webcam",
	KindAprilTag:       "apriltag processor",
	KindTensorFlow:     "tensorflow processor",
	KindVisionPortal:   "vision portal",
	KindOpaque:         "unknown hardware",
}

func (k Kind) String() string {
	return kindNames[k]
}

// JavaType returns the Java field type for the kind.
func (k Kind) JavaType() string {
	return javaTypes[k]
}

// Import returns the Java import required by the kind, or the empty string
// if the kind requires none.
func (k Kind) Import() string {
	return javaImports[k]
}

// ResolvedFromConfig returns whether fields of the kind are resolved from
// the hardware map by configuration name.  Vision processors and portals
// are constructed through builders instead.
func (k Kind) ResolvedFromConfig() bool {
	switch k {
	case KindAprilTag, KindTensorFlow, KindVisionPortal, KindOpaque:
		return false
	}

	return true
}

// MotorDirections maps dialect direction literals to the Java direction
// enumerants applied during hardware initialization.
var MotorDirections = map[string]string{
	"forward": "DcMotor.Direction.FORWARD",
	"reverse": "DcMotor.Direction.REVERSE",
}

// MotorModes maps the four recognized run mode literals to their Java
// enumerants.  Any other literal is an unsupported construct.
var MotorModes = map[string]string{
	"run_using_encoder":      "DcMotor.RunMode.RUN_USING_ENCODER",
	"run_without_encoder":    "DcMotor.RunMode.RUN_WITHOUT_ENCODER",
	"run_to_position":        "DcMotor.RunMode.RUN_TO_POSITION",
	"stop_and_reset_encoder": "DcMotor.RunMode.STOP_AND_RESET_ENCODER",
}
