package contract

import "github.com/ensaf/contracts-service/internal/model"

// Fixed legal text of sections 11 to 15. None of it is interpolated.

var firstPartyObligations = []model.Clause{
	{
		AR: "1.11 يلتزم الطرف الأول بدفع أجر الطرف الثاني حسب المذكور في البند (9)، وتوثيق الدفع عبر منصة الأجور المعتمدة لدى وزارة الموارد البشرية والتنمية الاجتماعية.",
		EN: "11.1 The First Party shall pay the Second Party's wage mentioned in Clause No. (9) and document the payment via the wage Portal approved by the HRSD.",
	},
	{
		AR: "2.11 يلتزم الطرف الأول بدفع العمولات الواردة في الفقرة (3.1.9) من البند رقم (9) للطرف الثاني في تاريخ الاستحقاق.",
		EN: "11.2 The First Party shall pay the commissions mentioned in Paragraph No. (9.1.3) of Clause No. (9) to the Second Party on the due date.",
	},
	{
		AR: "3.11 يلتزم الطرف الأول بتسليم المزايا العينية الواردة في الفقرة (4.1.9) من البند رقم (9) لصالح الطرف الثاني في تاريخ الاستحقاق.",
		EN: "11.3 The First Party shall provide the Second Party with the in-kind benefits mentioned in Paragraph No. (9.1.4) of Clause No. (9) on the Due Date.",
	},
	{
		AR: "4.11 عند تكليف الطرف الثاني بساعات عمل إضافية، يلتزم الطرف الأول بتكليفه كتابياً (أو إلكترونياً)، ويدفع الطرف الأول أجراً إضافياً عن ساعات العمل الإضافية يوازي أجر الساعة الإجمالي مضافاً إليه (50%) من أجر الساعة الأساسي، ويتم دفعه من خلال وسيلة الدفع المذكورة في البند رقم (9).",
		EN: "11.4 When assigning the Second Party to additional working hours, the First Party is obligated to assign them in writing (or electronically), and the First Party pays an additional wage equal to the total hourly wage plus (50%) of the basic hourly wage.",
	},
	{
		AR: "1.4.11 يجوز للطرف الأول بموافقة الطرف الثاني كتابياً (أو إلكترونياً) أن يحتسب للطرف الثاني أيام إجازة تعويضية مدفوعة الأجر بدلاً عن الأجر المستحق للطرف الثاني لساعات العمل الإضافية وفقاً لأحكام اللائحة التنفيذية لنظام العمل.",
		EN: "11.4.1 The First Party, with the written (or electronic) consent of the Second Party, may count paid compensatory leave days instead of the wages due for the additional working hours.",
	},
	{
		AR: "2.4.11 يلتزم الطرف الأول بعدم تجاوز الحد الأعلى لساعات العمل الإضافية المحددة في نظام العمل ولائحته التنفيذية عند تكليف الطرف الثاني، ويجوز بموافقة الطرف الثاني كتابياً (أو إلكترونياً) زيادة عدد الساعات الإضافية عن الحد الأعلى.",
		EN: "11.4.2 The First Party is obligated not to exceed the maximum limit of additional working hours specified in the Labor Law, and with the written consent of the Second Party, the number of additional hours may be increased beyond the maximum limit.",
	},
	{
		AR: "5.11 يلتزم الطرف الأول بتوفير العناية الصحية الوقائية والعلاجية للطرف الثاني مع مراعاة ما يوفره نظام الضمان الصحي التعاوني.",
		EN: "11.5 The First Party shall provide the Second Party with preventive and curative health care in accordance with the regulations of the Cooperative Health Insurance Law.",
	},
	{
		AR: "6.11 يلتزم الطرف الأول بتسجيل الطرف الثاني لدى المؤسسة العامة للتأمينات الاجتماعية، وسداد الاشتراكات حسب أنظمتها.",
		EN: "11.6 The First Party shall register the Second Party in the General Organization for Social Insurance (GOSI) and fulfill the payments of contributions according to their systems.",
	},
	{
		AR: "1.6.11 يلتزم الطرف الأول بدفع رسوم استقدام الطرف الثاني، ورسوم الإقامة ورخصة العمل وتجديدهما وما يترتب على تأخير ذلك من غرامات يتسبب بها الطرف الأول، ورسوم تغيير المهنة، والخروج والعودة وتذكرة عودة الطرف الثاني إلى موطنه بعد انتهاء العلاقة بين الطرفين.",
		EN: "11.6.1 The First Party is obligated to pay the Second Party's recruitment fees, residency and work permit fees, and their renewal, as well as any fines resulting from delays caused by the First Party.",
	},
	{
		AR: "7.11 يلتزم الطرف الأول بمنح الطرف الثاني الإجازة السنوية المنصوص عليها في الفقرة (1.8)، والعطل الرسمية والإجازات المرضية والإجازات الأخرى المنصوص عليها في نظام العمل ولائحة تنظيم العمل.",
		EN: "11.7 The First Party shall grant the Second Party annual leave stipulated in Paragraph (8.1), and official holidays, sick leaves, and other leaves stipulated in the Labor Law.",
	},
	{
		AR: "8.11 يلتزم الطرف الأول برد جميع ما أودعه لديه الطرف الثاني من شهادات أو وثائق خلال المدة المنصوص عليها في الفقرة (9.11).",
		EN: "11.8 The First Party shall return to the Second Party all certificates or documents that have been submitted during the period stipulated in Paragraph (11.9) hereof.",
	},
	{
		AR: "9.11 يلتزم الطرف الأول بدفع أجر الطرف الثاني وتصفية حقوقه خلال أسبوع -كحد أقصى- من تاريخ انتهاء العقد، وفي حال الإنهاء من الطرف الثاني فيلتزم الطرف الأول بدفع أجر الطرف الثاني وتصفية حقوقه خلال مدة لا تزيد عن أسبوعين من تاريخ انتهاء العقد.",
		EN: "11.9 The First Party shall pay the Second Party's wage and settle its entitlements within a maximum period of one week from the contract end date. If the Second Party ends the contract, the First Party shall settle all entitlements within two weeks.",
	},
	{
		AR: "10.11 يلتزم الطرف الأول بدفع مكافأة نهاية الخدمة للطرف الثاني عند انتهاء العقد خلال المدة المنصوص عليها في الفقرة (9.11)، ويستثنى من ذلك إنهاء العقد خلال مدة التجربة أو استقالة الطرف الثاني وخدمته تقل عن سنتين متتاليتين أو كان إنهاء العقد بحسب إحدى الحالات الواردة بالمادة (80) من نظام العمل.",
		EN: "11.10 The First Party shall pay the Second Party an end-of-service remuneration upon the end of the contract, except for termination during the probationary period, resignation with less than two consecutive years of service, or termination under Article (80).",
	},
	{
		AR: "11.11 يلتزم الطرف الأول بدفع جميع التكاليف والنفقات التي يتحملها الطرف الثاني في سبيل إنهاء المهمات المكلّف بها من قبل الطرف الأول.",
		EN: "11.11 The First Party shall pay all the costs and expenses incurred by the Second Party to complete the tasks assigned by the First Party.",
	},
}

var secondPartyObligations = []model.Clause{
	{
		AR: "1.12 يلتزم الطرف الثاني بإنجاز العمل الموكل إليه؛ وفقا لأصول المهنة، ووفقا لتعليمات الطرف الأول، مالم يكن في هذه التعليمات ما يخالف العقد، أو النظام، أو الآداب العامة، ولم يكن في تنفيذها ما يعرضه للخطر.",
		EN: "12.1 The Second Party is obliged to finish the assigned work in accordance with the principles of the profession and the instructions of the First Party.",
	},
	{
		AR: "2.12 يلتزم الطرف الثاني بأن يعتني عناية كافية بالأدوات، والمهمات المسندة إليه والخامات المملوكة للطرف الأول الموضوعة تحت تصرف الطرف الثاني، أو التي تكون في عهدته، وأن يعيد إلى الطرف الأول المواد غير المستهلكة.",
		EN: "12.2 The Second Party is obliged to take adequate care of the tools and tasks assigned and restore to the First Party the materials that were not used.",
	},
	{
		AR: "3.12 يلتزم الطرف الثاني بحسن السلوك والأخلاق أثناء العمل، والالتزام بالأنظمة، والأعراف، والعادات، والآداب المرعية في المملكة العربية السعودية والقواعد واللوائح والتعليمات المعمول بها لدى الطرف الأول، ويتحمل الطرف الثاني كامل الغرامات المالية الناتجة عن مخالفته لتلك الأنظمة.",
		EN: "12.3 The Second Party is obliged to commit to good behavior and ethics at work, adhere to laws, customs, rules, and etiquette in the Kingdom of Saudi Arabia.",
	},
	{
		AR: "4.12 يلتزم الطرف الثاني بأن يقدم كل عون ومساعدة دون أن يشترط لذلك أجراً إضافياً، وذلك في حالات الكوارث والأخطار التي تهدد سلامة مكان العمل أو الأشخاص العاملين فيه.",
		EN: "12.4 The Second Party is obliged to provide all assistance and support without requiring additional wages in the event of disasters and threats to the safety of the place of work.",
	},
	{
		AR: "5.12 يلتزم الطرف الثاني -عند طلب الطرف الأول- بأداء الفحوصات الطبية التي يرغب الطرف الأول إجرائها عليه قبل الالتحاق بالعمل أو أثناءه لغرض التحقق من خلوه من الأمراض المهنية أو السارية.",
		EN: "12.5 The Second Party is obliged to undergo medical examination, according to the First Party's request, prior to or during work.",
	},
}

var disputeClauses = []model.Clause{
	{
		AR: "1.13 يطبق نظام العمل ولائحته التنفيذية واللوائح والقرارات الوزارية ولائحة تنظيم العمل بالمنشأة المعتمدة من قبل وزارة الموارد البشرية والتنمية الاجتماعية على هذا العقد وعلى كل ما لم يرد فيه نص في هذا العقد. ويحل هذا العقد محل كافة الاتفاقيات والعقود السابقة الشفهية منها أو الكتابية بين الطرفين إن وجدت.",
		EN: "13.1 The Labor Law, its Executive Regulations, ministerial regulations and decisions, and the work policy approved by the Ministry of Human Resources and Social Development shall apply to this contract.",
	},
	{
		AR: "2.13 يخضع هذا العقد ويُفسَر وفقاً للأنظمة واللوائح المعمول بها في المملكة العربية السعودية.",
		EN: "13.2 This contract is governed by and construed in accordance with the laws and regulations in force in the Kingdom of Saudi Arabia.",
	},
	{
		AR: "3.13 يعد هذا العقد سنداً تنفيذياً، وينعقد الاختصاص لمحكمة التنفيذ فيما يلي:",
		EN: "13.3 This contract is considered an executive document, and the jurisdiction shall be vested in the Enforcement Court for the following matters:",
	},
	{
		AR: "1.3.13 التزام الطرف الأول بدفع صافي الأجر المستحق الوارد في الفقرة (7.1.1.9) من البند رقم (9) من هذا العقد.",
		EN: "13.3.1 The obligation of the First Party to pay the net wage due as stated in Clause (9.1.1.7) of Clause No. (9) hereof.",
	},
	{
		AR: "4.13 فيما عدا الحقوق والالتزامات القابلة للتنفيذ الواردة في الفقرة (3.13) من هذا البند، والتي ينعقد الاختصاص فيها لمحكمة التنفيذ وفقاً لنظام التنفيذ، فإن كل نزاع أو خلاف ينشأ عن هذا العقد يتم حلّه ابتداءً من خلال التسوية الودية. وفي حال تعذر الوصول إلى تسوية، فينعقد الاختصاص بنظر النزاع للمحاكم العمالية في المملكة العربية السعودية.",
		EN: "13.4 Except for the applicable rights and obligations stated in Paragraph (13.3), any dispute or disagreement arising from this contract shall initially be resolved through amicable settlement. If a settlement cannot be reached, the jurisdiction shall lie with the labor courts in the Kingdom of Saudi Arabia.",
	},
}

var generalProvisions = []model.Clause{
	{
		AR: "1.14 اتفق الطرفان على أن الإشعارات والإخطارات وأي تصرفات تصدر لأي غرض بناءً على إرادة الطرفين أو أحدهما وذات علاقة بهذا العقد لن تكون منتجة لآثارها القانونية إلا إذا تمّت بواسطة الخدمات أو الوسائل أو النماذج التي تعتمدها المنصة لهذا الغرض ووفقاً لاشتراطاتها ومتطلباتها.",
		EN: "14.1 The Parties agree that no notices or correspondence issued for any reason will be legally effective unless carried out via the Portal's approved methods.",
	},
	{
		AR: "2.14 باستثناء ما ورد في الفقرة (1.11) من البند (11)، وبما لا يتعارض مع الفقرة (1.14) من هذا البند، يحق للطرفين - في حال عدم توفّر الخدمات - توجيه الإشعارات والإخطارات اللازمة بواسطة العنوان الوطني أو بالبريد المسجّل أو الممتاز أو عبر الهاتف أو البريد الإلكتروني.",
		EN: "14.2 Except as mentioned in Paragraph (11.1), the Parties shall have the right to send notifications via the National Address, registered or express mail, phone, email, or by hand delivery.",
	},
	{
		AR: "3.14 يقر الطرفان بعلمهما وقبولهما لكل الشروط والأحكام الواردة في هذا العقد.",
		EN: "14.3 The Parties acknowledge that they have known and understood all the terms and conditions of this contract.",
	},
	{
		AR: "4.14 يوافق الطرف الثاني على استقطاع الطرف الأول للنسبة المقررة عليه من الأجر الشهري للاشتراك في المؤسسة العامة للتأمينات الاجتماعية.",
		EN: "14.4 The Second Party approves that the First Party will deduct a certain percentage from its monthly wage as a contribution to the GOSI.",
	},
	{
		AR: "5.14 يجوز للطرفين الاتفاق على إضافة شروط وأحكام إضافية في بند الشروط الإضافية عند إبرام العقد، بشرط عدم تعارضها مع الشروط والأحكام الواردة في هذا العقد، أو نظام العمل ولائحته التنفيذية أو لائحة تنظيم العمل الداخلية المعتمدة من وزارة الموارد البشرية والتنمية الاجتماعية، وفي حال تعارضها، تعد الشروط الإضافية ملغية.",
		EN: "14.5 The Parties may add additional terms and conditions in Additional Terms Clause, provided that they shall not contradict the terms hereof, the Labor Law, its Executive Regulations, or the internal work policy.",
	},
	{
		AR: "6.14 يُعمل بالتقويم (الميلادي) في كل ما يتعلق بتنفيذ هـذا العـقد.",
		EN: "14.6 The (Gregorian) calendar shall apply with regard to all matters related to the implementation of this Contract.",
	},
	{
		AR: "7.14 تعتبر اللغة العربية هي اللغة المعتمدة في تنفيذ وتفسير هذا العقد، ويجوز للطرفين استخدام لغة أخرى إلى جانب اللغة العربية، وفي حال وجود اختلاف، فيعتد بالنص الوارد باللغة العربية.",
		EN: "14.7 Arabic shall be the official language for the execution and interpretation of this contract.",
	},
	{
		AR: "8.14 يجوز التعديل على البيانات الواردة في البنود المذكورة أدناه بموافقة الطرفين وفقاً للشروط والإجراءات المعتمدة عبر المنصة.",
		EN: "14.8 The data mentioned in the clauses below may be amended with the consent of both parties through the Portal.",
	},
	{
		AR: "9.14 يلتزم الطرف الأول بتوثيق أي تعديل حسب الفقرة (8.14) من خلال المنصة.",
		EN: "14.9 The First Party shall document any amendment as per Paragraph (14.8) through the Portal.",
	},
	{
		AR: "10.14 حرر هذا العقد كنسخة إلكترونية متطابقة لكل من صاحب العمل والعامل وموقعة إلكترونياً من طرفي العقد، وقد تسلم كل طرف نسخته للعمل بموجبها. كما اتفق الطرفان على أن للمنصة الحق في تبادل بيانات هذا العقد وسجل المعاملات المالية وغيرها الناتجة عن تنفيذه.",
		EN: "14.10 This Contract is made and concluded as an identical electronic counterpart for the Employer and the Employee, who signed it electronically.",
	},
}

var additionalTerms = []model.Clause{
	{
		AR: "يجوز للطرفين الاتفاق على إضافة أحكام وشروط إضافية بشرط عدم تعارضها مع الشروط والأحكام الواردة هذا العقد الموحد وفي حال تعارضها، تعد الشروط الإضافية ملغية.",
		EN: "The Parties may add additional terms and conditions, provided that the same shall not contradict the Terms and Conditions hereof; otherwise, the additional terms and conditions will be deemed null and void.",
	},
}
